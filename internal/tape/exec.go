package tape

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Gaurav-Gosain/deskfolio/internal/desktop"
)

// Actions returns the window manager commands a window or pointer command
// stands for. ok is false for every other command type.
func Actions(cmd *Command) (actions []desktop.Command, ok bool) {
	at := func(i int) desktop.Point {
		return desktop.Point{X: cmd.Ints[i], Y: cmd.Ints[i+1]}
	}

	switch cmd.Type {
	case CommandType_Open:
		return []desktop.Command{desktop.Open{ID: cmd.Args[0]}}, true
	case CommandType_Close:
		return []desktop.Command{desktop.Close{ID: cmd.Args[0]}}, true
	case CommandType_Focus:
		return []desktop.Command{desktop.Focus{ID: cmd.Args[0]}}, true
	case CommandType_Click:
		return []desktop.Command{
			desktop.Press{Pointer: at(0), Button: desktop.ButtonLeft},
			desktop.Commit{Pointer: at(0)},
		}, true
	case CommandType_Press:
		return []desktop.Command{desktop.Press{Pointer: at(0), Button: desktop.ButtonLeft}}, true
	case CommandType_MoveTo:
		return []desktop.Command{desktop.Move{Pointer: at(0)}}, true
	case CommandType_Release:
		return []desktop.Command{desktop.Commit{Pointer: at(0)}}, true
	case CommandType_Drag:
		return []desktop.Command{
			desktop.Press{Pointer: at(0), Button: desktop.ButtonLeft},
			desktop.Move{Pointer: at(2)},
			desktop.Commit{Pointer: at(2)},
		}, true
	case CommandType_Cancel:
		return []desktop.Command{desktop.Cancel{}}, true
	}
	return nil, false
}

// Verify checks an Expect command against mgr. It returns an
// *ExpectationError when the desktop differs.
func Verify(cmd *Command, mgr *desktop.Manager) error {
	fail := func(got string) error {
		return &ExpectationError{Line: cmd.Line, Command: cmd.String(), Got: got}
	}
	window := func() (*desktop.Window, error) {
		w, ok := mgr.Window(cmd.Args[0])
		if !ok {
			return nil, fail("window not open")
		}
		return w, nil
	}

	switch cmd.Type {
	case CommandType_ExpectOpen:
		got := slices.Sorted(slices.Values(mgr.OpenIDs()))
		want := slices.Sorted(slices.Values(cmd.Args))
		if !slices.Equal(got, want) {
			return fail(fmt.Sprintf("[%s]", strings.Join(got, " ")))
		}
	case CommandType_ExpectTop:
		if top := mgr.Top(); top != cmd.Args[0] {
			return fail(fmt.Sprintf("%q", top))
		}
	case CommandType_ExpectPosition:
		w, err := window()
		if err != nil {
			return err
		}
		if w.Position.X != cmd.Ints[0] || w.Position.Y != cmd.Ints[1] {
			return fail(fmt.Sprintf("%d %d", w.Position.X, w.Position.Y))
		}
	case CommandType_ExpectSize:
		w, err := window()
		if err != nil {
			return err
		}
		if w.Size.Width != cmd.Ints[0] || w.Size.Height != cmd.Ints[1] {
			return fail(fmt.Sprintf("%d %d", w.Size.Width, w.Size.Height))
		}
	default:
		return fmt.Errorf("line %d: %s is not an expectation", cmd.Line, cmd.Type)
	}
	return nil
}
