package commands

import (
	"errors"
	"strconv"
	"strings"
)

type Operation int

const PORT_REGEX = "^[0-9]{4,5}$"

const (
	DEFAULT = iota
	// Render the blockchain with graphviz.
	SHOW
	// Verify the whole chain.
	VERIFY
	// Print height and tail of the chain.
	CHAIN
	// Print the current owner of a land.
	OWNER
	// List pending transactions.
	PENDING
)

// A command contains a operation and many arguments.
type Command struct {
	Op   Operation
	Args []string
}

func (c Command) IsValid() bool {
	switch c.Op {
	case VERIFY, CHAIN, PENDING:
		return len(c.Args) == 0
	case OWNER:
		return len(c.Args) == 1 && c.Args[0] != ""
	case SHOW:
		if len(c.Args) != 1 {
			return false
		}
		// depth must be a number.
		if _, err := strconv.Atoi(c.Args[0]); err != nil {
			return false
		}
		return true
	default:
		return false
	}
}

// From string, create a ledger admin command.
func CreateCommand(s string) (Command, error) {
	// split command by space.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return Command{}, errors.New("command is empty")
	}
	cmd := Command{}
	switch ss[0] {
	case "show":
		cmd.Op = SHOW
	case "verify":
		cmd.Op = VERIFY
	case "chain":
		cmd.Op = CHAIN
	case "owner":
		cmd.Op = OWNER
	case "pending":
		cmd.Op = PENDING
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return Command{}, errors.New("invalid command")
	}
	return cmd, nil
}

// Create a brand new command with default operation.
func NewDefaultCommand() Command {
	return Command{
		Op: DEFAULT,
	}
}

func (c Command) IsDefault() bool {
	return c.Op == DEFAULT
}
