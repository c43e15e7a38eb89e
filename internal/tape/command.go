package tape

import (
	"fmt"
	"strings"
	"time"
)

// CommandType represents the type of a tape command
type CommandType string

const (
	// Viewport and windows
	CommandType_Viewport CommandType = "Viewport"
	CommandType_Open     CommandType = "Open"
	CommandType_Close    CommandType = "Close"
	CommandType_Focus    CommandType = "Focus"

	// Pointer
	CommandType_Click   CommandType = "Click"
	CommandType_Press   CommandType = "Press"
	CommandType_MoveTo  CommandType = "MoveTo"
	CommandType_Release CommandType = "Release"
	CommandType_Drag    CommandType = "Drag"
	CommandType_Cancel  CommandType = "Cancel"

	// History
	CommandType_Back    CommandType = "Back"
	CommandType_Forward CommandType = "Forward"
	CommandType_Visit   CommandType = "Visit"

	// Synchronization
	CommandType_Sleep CommandType = "Sleep"

	// Assertions
	CommandType_ExpectOpen     CommandType = "ExpectOpen"
	CommandType_ExpectTop      CommandType = "ExpectTop"
	CommandType_ExpectPosition CommandType = "ExpectPosition"
	CommandType_ExpectSize     CommandType = "ExpectSize"
)

// Command represents a parsed tape command
type Command struct {
	Type   CommandType
	Args   []string      // Command arguments
	Ints   []int         // Numeric arguments, in order
	Delay  time.Duration // Sleep duration
	Line   int           // Source line number
	Column int           // Source column number
}

// String returns a string representation of the command
func (c *Command) String() string {
	switch c.Type {
	case CommandType_Sleep:
		return fmt.Sprintf("Sleep %v", c.Delay)
	case CommandType_Visit:
		return fmt.Sprintf("Visit %q", strings.Join(c.Args, ""))
	}

	parts := []string{string(c.Type)}
	parts = append(parts, c.Args...)
	for _, n := range c.Ints {
		parts = append(parts, fmt.Sprint(n))
	}
	return strings.Join(parts, " ")
}

// IsExpectation reports whether the command asserts rather than acts.
func (ct CommandType) IsExpectation() bool {
	switch ct {
	case CommandType_ExpectOpen, CommandType_ExpectTop, CommandType_ExpectPosition, CommandType_ExpectSize:
		return true
	}
	return false
}

// argKind is one slot of a command signature.
type argKind int

const (
	argID argKind = iota
	argInt
	argPath
	argDuration
	argIDs // zero or more ids, always last
)

// signatures lists the arguments each command takes.
var signatures = map[TokenType]struct {
	cmd  CommandType
	args []argKind
}{
	TOKEN_VIEWPORT: {CommandType_Viewport, []argKind{argInt, argInt}},
	TOKEN_OPEN:     {CommandType_Open, []argKind{argID}},
	TOKEN_CLOSE:    {CommandType_Close, []argKind{argID}},
	TOKEN_FOCUS:    {CommandType_Focus, []argKind{argID}},

	TOKEN_CLICK:   {CommandType_Click, []argKind{argInt, argInt}},
	TOKEN_PRESS:   {CommandType_Press, []argKind{argInt, argInt}},
	TOKEN_MOVE_TO: {CommandType_MoveTo, []argKind{argInt, argInt}},
	TOKEN_RELEASE: {CommandType_Release, []argKind{argInt, argInt}},
	TOKEN_DRAG:    {CommandType_Drag, []argKind{argInt, argInt, argInt, argInt}},
	TOKEN_CANCEL:  {CommandType_Cancel, nil},

	TOKEN_BACK:    {CommandType_Back, nil},
	TOKEN_FORWARD: {CommandType_Forward, nil},
	TOKEN_VISIT:   {CommandType_Visit, []argKind{argPath}},

	TOKEN_SLEEP: {CommandType_Sleep, []argKind{argDuration}},

	TOKEN_EXPECT_OPEN:     {CommandType_ExpectOpen, []argKind{argIDs}},
	TOKEN_EXPECT_TOP:      {CommandType_ExpectTop, []argKind{argID}},
	TOKEN_EXPECT_POSITION: {CommandType_ExpectPosition, []argKind{argID, argInt, argInt}},
	TOKEN_EXPECT_SIZE:     {CommandType_ExpectSize, []argKind{argID, argInt, argInt}},
}
