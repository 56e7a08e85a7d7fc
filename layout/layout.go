package layout

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/Luismorlan/land_in_go/commands"
	"github.com/jroimartin/gocui"
)

const (
	PAST_COMMAND_VIEW = "pastcommand"
	INPUT_VIEW        = "input"
	LOGGER_VIEW       = "logger"
	MANUAL_VIEW       = "manual"
)

// The last entered command, waiting to be echoed by PastCmd.
type lastCmd struct {
	str   string
	ready bool
	m     sync.Mutex
}

// PastCmd is the ViewManager that logs past command.
type PastCmd struct {
	name string
	last *lastCmd
}

// Input box for commands. submit parses the line and hands a valid command over, returning
// the parse error otherwise.
type Input struct {
	name   string
	last   *lastCmd
	submit func(s string) error
}

// Logger shows output of the handled commands.
type Logger struct {
	name string
}

// Manual shows the usage text, read once when the GUI is created.
type Manual struct {
	name string
	text string
}

func (pc *PastCmd) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left corner.
	v, err := g.SetView(pc.name, 1, maxY*2/3, maxX/3, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Autoscroll = true
	v.Wrap = true

	pc.last.m.Lock()
	defer pc.last.m.Unlock()
	if pc.last.ready {
		fmt.Fprintln(v, "> "+pc.last.str)
	}
	pc.last.ready = false
	return nil
}

func (i *Input) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom, full width.
	v, err := g.SetView(i.name, 1, maxY-5, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Autoscroll = true
	v.Editor = i
	v.Editable = true
	return nil
}

func (l *Logger) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Right side.
	v, err := g.SetView(l.name, maxX/3+1, 1, maxX-1, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Autoscroll = true
	v.Wrap = true
	return nil
}

func (m *Manual) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Top left corner.
	v, err := g.SetView(m.name, 1, 1, maxX/3, maxY*2/3-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Clear()
	fmt.Fprintln(v, m.text)
	return nil
}

func (i *Input) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyEnter:
		// Remove \n from buffer.
		s := strings.Replace(v.Buffer(), "\n", "", -1)
		err := i.submit(s)
		i.last.m.Lock()
		i.last.str = s
		if err != nil {
			i.last.str = s + "\n" + err.Error()
		}
		i.last.ready = true
		i.last.m.Unlock()

		// Reset cursor.
		v.Clear()
		v.SetOrigin(0, 0)
		v.SetCursor(0, 0)
	case ch != 0 && mod == 0:
		v.EditWrite(ch)
	case key == gocui.KeySpace:
		v.EditWrite(' ')
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		v.EditDelete(true)
	}
}

func SetFocus(name string) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(name)
		return err
	}
}

// Build the submit function of the input box for a command channel.
func submitter(cmd interface{}) (func(s string) error, error) {
	switch c := cmd.(type) {
	case chan commands.Command:
		return func(s string) error {
			op, err := commands.CreateCommand(s)
			if err == nil {
				c <- op
			}
			return err
		}, nil
	case chan commands.ClientCommand:
		return func(s string) error {
			op, err := commands.CreateClientCommand(s)
			if err == nil {
				c <- op
			}
			return err
		}, nil
	default:
		return nil, errors.New("invalid command channel")
	}
}

// Create a GUI, using the command channel to pass command to the ledger or the wallet.
func CreateGui(cmd interface{}, manual_path string) (*gocui.Gui, error) {
	submit, err := submitter(cmd)
	if err != nil {
		return nil, err
	}
	manual, err := ioutil.ReadFile(manual_path)
	if err != nil {
		return nil, err
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = true

	last := &lastCmd{}
	pc := &PastCmd{name: PAST_COMMAND_VIEW, last: last}
	input := &Input{name: INPUT_VIEW, last: last, submit: submit}
	l := &Logger{name: LOGGER_VIEW}
	m := &Manual{name: MANUAL_VIEW, text: string(manual)}
	focus := gocui.ManagerFunc(SetFocus(INPUT_VIEW))
	g.SetManager(pc, input, l, m, focus)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, err
	}
	return g, nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

// Log prints msg in the logger view, or on stdout when there is no GUI.
func Log(g *gocui.Gui, msg string) {
	if g == nil {
		fmt.Println(msg)
		return
	}
	g.Update(func(g *gocui.Gui) error {
		v, err := g.View(LOGGER_VIEW)
		if err != nil {
			return err
		}
		fmt.Fprintln(v, msg)
		return nil
	})
}
