package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeDelete Type = "del"
	TypeDaily  Type = "daily"
	TypeHide   Type = "hide"
	TypeShow   Type = "show"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// AddArgs describe a new task: `add <title> @YYYY-MM-DD HH:MM [daily]`.
// Date and time are mandatory; the update loop validates them further.
type AddArgs struct {
	Title string
	Date  string
	Time  string
	Daily bool
}

// IndexArgs name a task by its 1-based position in the displayed list.
type IndexArgs struct {
	Index int
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *IndexArgs
	Delete *IndexArgs
	Daily  *IndexArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, strings.TrimSpace(strings.TrimPrefix(raw, parts[0])))
	case TypeDone:
		return parseIndex(input, TypeDone, args)
	case TypeDelete:
		return parseIndex(input, TypeDelete, args)
	case TypeDaily:
		return parseIndex(input, TypeDaily, args)
	case TypeHide:
		return Command{Type: TypeHide, Raw: input}, nil
	case TypeShow:
		return Command{Type: TypeShow, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw, body string) (Command, error) {
	if body == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	at := strings.LastIndex(body, "@")
	if at < 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a schedule: @YYYY-MM-DD HH:MM"}
	}

	title := strings.TrimSpace(body[:at])
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	fields := strings.Fields(body[at+1:])
	if len(fields) < 2 || len(fields) > 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "schedule must be @YYYY-MM-DD HH:MM [daily]"}
	}
	daily := false
	if len(fields) == 3 {
		if !strings.EqualFold(fields[2], "daily") {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown schedule flag: %s", fields[2])}
		}
		daily = true
	}

	return Command{
		Type: TypeAdd,
		Raw:  raw,
		Add:  &AddArgs{Title: title, Date: fields[0], Time: fields[1], Daily: daily},
	}, nil
}

func parseIndex(raw string, typ Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", typ)}
	}
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a positive task number", typ)}
	}

	cmd := Command{Type: typ, Raw: raw}
	switch typ {
	case TypeDone:
		cmd.Done = &IndexArgs{Index: index}
	case TypeDelete:
		cmd.Delete = &IndexArgs{Index: index}
	case TypeDaily:
		cmd.Daily = &IndexArgs{Index: index}
	}
	return cmd, nil
}
