package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waxier358/project-9-Meeting-Rooms-Schedule-App/internal/ui"
)

func TestPrompter_Text(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(" alice \r\nlast"), &out)

	got, err := p.Text("Username")
	require.NoError(t, err)
	assert.Equal(t, " alice ", got)
	assert.Equal(t, "Username: ", out.String())

	got, err = p.Text("Email address")
	require.NoError(t, err)
	assert.Equal(t, "last", got)

	_, err = p.Text("Token")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompter_PasswordWithoutTerminalReadsLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("Passw0rd!\n"), &out)

	got, err := p.Password("Password")
	require.NoError(t, err)
	assert.Equal(t, "Passw0rd!", got)
}

func TestPrompter_PasswordFromTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	origRead, origTerminal := readPassword, isTerminal
	defer func() { readPassword, isTerminal = origRead, origTerminal }()

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("S3cret!pw"), nil }

	var out bytes.Buffer
	p := NewPrompter(r, &out)

	got, err := p.Password("Password")
	require.NoError(t, err)
	assert.Equal(t, "S3cret!pw", got)
	assert.Equal(t, "Password: \n", out.String())
}

func TestPrompter_Ask(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		confirmed bool
	}{
		{"enter confirms", "\n", true},
		{"ok confirms", "OK\n", true},
		{"cancel declines", "cancel\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ran := false
			p := NewPrompter(strings.NewReader(tt.answer), &out)

			confirmed, err := p.Ask(ui.Confirm("Schedule room", "Book it?", func() error {
				ran = true
				return nil
			}))

			require.NoError(t, err)
			assert.Equal(t, tt.confirmed, confirmed)
			assert.Equal(t, tt.confirmed, ran)
			assert.Contains(t, out.String(), "[Schedule room] Book it?")
			assert.Contains(t, out.String(), "OK/CANCEL: ")
		})
	}
}

func TestIntervalArg(t *testing.T) {
	assert.Equal(t, "08:00 - 10:00", intervalArg("1"))
	assert.Equal(t, "20:00 - 22:00", intervalArg("7"))
	assert.Equal(t, "8", intervalArg("8"))
	assert.Equal(t, "12:00 - 14:00", intervalArg("12:00 - 14:00"))
}
