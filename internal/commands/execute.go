package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Done   func(IndexArgs) (Result, error)
	Delete func(IndexArgs) (Result, error)
	Daily  func(IndexArgs) (Result, error)
	Hide   func() (Result, error)
	Show   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "del handler not configured"}
		}
		return handlers.Delete(*cmd.Delete)
	case TypeDaily:
		if handlers.Daily == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "daily handler not configured"}
		}
		return handlers.Daily(*cmd.Daily)
	case TypeHide:
		if handlers.Hide == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "hide handler not configured"}
		}
		return handlers.Hide()
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
