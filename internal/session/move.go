package session

import (
	"fmt"
	"strings"
)

type Move uint8

const (
	Open Move = iota + 1
	Flag
	lastMove
)

var moveNames = [...]string{
	Open: "open",
	Flag: "flag",
}

func (m Move) String() string {
	if m > 0 && m < lastMove {
		return moveNames[m]
	}
	return fmt.Sprintf("Move(%d)", m)
}

var ErrBadMove error

func init() {
	var allowedMoves []string
	for m := Open; m < lastMove; m++ {
		allowedMoves = append(allowedMoves, "'"+m.String()+"'")
	}
	ErrBadMove = fmt.Errorf("move must be one of %s", strings.Join(allowedMoves, ", "))
}

func ParseMove(s string) (move Move, err error) {
	switch strings.ToLower(s) {
	case "open", "reveal":
		move = Open
	case "flag":
		move = Flag
	default:
		err = ErrBadMove
	}
	return
}
