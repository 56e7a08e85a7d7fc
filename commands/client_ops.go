package commands

import (
	"errors"
	"math"
	"net"
	"regexp"
	"strconv"
	"strings"
)

const (
	// do nothing operation
	NOOP = iota
	// Connect a ledger with ip address and port
	CONNECT
	// Register a user: name, id, password
	ADD_USER
	// Buy a land: buyer id, seller id, land id, price, seller password
	BUY
	// List the transfers of a land
	LAND
	// List the transfers involving a user
	USER
)

var portRegex = regexp.MustCompile(PORT_REGEX)

type ClientCommand struct {
	Op   Operation
	Args []string
}

func (c ClientCommand) IsValid() bool {
	switch c.Op {
	case BUY:
		if len(c.Args) != 5 {
			return false
		}
		// NaN fails v >= 0.
		v, err := strconv.ParseFloat(c.Args[3], 64)
		return err == nil && v >= 0 && !math.IsInf(v, 0)
	case ADD_USER:
		return len(c.Args) == 3
	case LAND, USER:
		return len(c.Args) == 1
	case CONNECT:
		if len(c.Args) != 2 {
			return false
		}
		ipAddr := c.Args[0]
		port := c.Args[1]
		ip := net.ParseIP(ipAddr)
		return ip != nil && ip.To4() != nil && portRegex.MatchString(port)
	default:
		return false
	}
}

func CreateClientCommand(s string) (ClientCommand, error) {
	// split command by space.
	ss := strings.Fields(s)
	if len(ss) == 0 {
		return ClientCommand{}, errors.New("command is empty")
	}
	cmd := ClientCommand{}
	switch ss[0] {
	case "connect":
		cmd.Op = CONNECT
	case "add_user":
		cmd.Op = ADD_USER
	case "buy":
		cmd.Op = BUY
	case "land":
		cmd.Op = LAND
	case "user":
		cmd.Op = USER
	default:
		cmd.Op = NOOP
	}
	cmd.Args = ss[1:]
	if !cmd.IsValid() {
		return ClientCommand{}, errors.New("invalid command")
	}
	return cmd, nil
}
