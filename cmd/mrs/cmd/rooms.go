package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ctxkeys"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/model"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/rotation"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/service"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
)

const roomsHelp = "n/p: next/previous room, >/<: next/previous picture, d [date]: day plan, b <interval>: book, q: quit"

func RoomsCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rooms",
		Short: "Browse rooms and their pictures, show day plans and book intervals",
		Args:  cobra.NoArgs,
		RunE: action(func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			p := env.prompt

			err := env.requireUser()
			if err != nil {
				return err
			}

			browser, err := env.App.NewBrowser(ctx)
			if err != nil {
				return err
			}

			date := time.Now().Format(model.DateLayout)
			fmt.Fprintln(out, roomsHelp)
			if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.StorageDriver == "disk" {
				fmt.Fprintf(out, "Current picture: %s\n", filepath.Join(cfg.ImagesPath, service.CurrentPicturePath))
			}
			printRoom(out, browser)

			for {
				line, err := p.Text(">")
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				fields := strings.Fields(line)
				if len(fields) == 0 {
					continue
				}

				room, _ := browser.Room()
				switch fields[0] {
				case "n":
					room, err = browser.NextRoom(ctx)
					if err == nil {
						err = env.App.Session.SaveCurrentRoom(ctx, room)
					}
				case "p":
					room, err = browser.PrevRoom(ctx)
					if err == nil {
						err = env.App.Session.SaveCurrentRoom(ctx, room)
					}
				case ">":
					_, err = browser.NextPicture(ctx)
				case "<":
					_, err = browser.PrevPicture(ctx)
				case "d":
					if len(fields) > 1 {
						date = fields[1]
					}
					err = showDay(ctx, env, out, room, date)
				case "b":
					if len(fields) < 2 {
						fmt.Fprintln(out, roomsHelp)
						continue
					}
					err = book(ctx, env, room, date, fields[1], false)
				case "q":
					return nil
				default:
					fmt.Fprintln(out, roomsHelp)
					continue
				}

				if err != nil {
					p.Show(ui.FromError(err))
					continue
				}
				if fields[0] != "d" && fields[0] != "b" {
					printRoom(out, browser)
				}
			}
		}),
	}
}

func ScheduleCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <room> [date]",
		Short: "Show the intervals of a room for a day (default today, format DD.MM.YYYY)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: action(func(cmd *cobra.Command, args []string) error {
			date := time.Now().Format(model.DateLayout)
			if len(args) > 1 {
				date = args[1]
			}
			return showDay(cmd.Context(), env, cmd.OutOrStdout(), args[0], date)
		}),
	}
}

func BookCmd(env *Env) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "book <room> <date> <interval>",
		Short: "Book an interval, given as its number (1-7) or label (\"08:00 - 10:00\")",
		Args:  cobra.ExactArgs(3),
		RunE: action(func(cmd *cobra.Command, args []string) error {
			err := env.requireUser()
			if err != nil {
				return err
			}
			return book(cmd.Context(), env, args[0], args[1], args[2], yes)
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "book without asking for confirmation")
	return cmd
}

func printRoom(w io.Writer, browser *rotation.Browser) {
	room, err := browser.Room()
	if err != nil {
		return
	}
	fmt.Fprintf(w, "Room: %s (picture %d/%d)\n", room, browser.PictureIndex(), model.PicturesPerRoom)
}

func showDay(ctx context.Context, env *Env, w io.Writer, room, date string) error {
	plan, err := env.App.ScheduleService.Day(ctx, room, date)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s on %s\n", plan.Room, plan.Date)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, slot := range plan.Slots {
		status := "free"
		switch {
		case slot.Booked:
			status = "booked by " + slot.OrderBy
		case !slot.Bookable:
			status = "passed"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, slot.Interval, status)
	}
	return tw.Flush()
}

// book asks for confirmation unless yes is set, then books the interval.
func book(ctx context.Context, env *Env, room, date, interval string, yes bool) error {
	p := env.prompt
	user := env.App.State.User
	interval = intervalArg(interval)

	run := func() error {
		result, err := env.App.ScheduleService.Book(env.App.State.Context(ctx), room, date, interval)
		if err != nil {
			return err
		}
		if result.DeliveryErr != nil {
			p.Show(ui.BookingEmailFailed())
			return nil
		}
		b := result.Booking
		p.Show(ui.Info("Schedule room", fmt.Sprintf("%s is booked for %s on %s.", b.RoomName, b.OrderDate, b.OrderInterval)))
		return nil
	}

	if yes {
		return run()
	}

	confirmed, err := p.Ask(ui.ConfirmBooking(room, date, interval, user.Email, run))
	if err != nil {
		return err
	}
	if !confirmed {
		p.Show(ui.Info("Schedule room", "Nothing was booked."))
	}
	return nil
}

// intervalArg accepts an interval number as shown in the day plan or a label.
func intervalArg(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > len(model.Intervals) {
		return s
	}
	return model.Intervals[n-1].Label()
}
