package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type messageType int

const (
	errorType messageType = iota
	warningType
	activityType
	successType
	infoType
	titleType
)

type messageStyle struct {
	symbol string
	color  *color.Color
}

func styleOf(t messageType) messageStyle {
	switch t {
	case errorType:
		return messageStyle{symbol: "✗ ", color: color.New(color.FgRed)}
	case warningType:
		return messageStyle{symbol: "⚠ ", color: color.New(color.FgYellow)}
	case activityType:
		return messageStyle{symbol: "► ", color: color.New(color.Reset)}
	case successType:
		return messageStyle{symbol: "✔ ", color: color.New(color.FgGreen)}
	case infoType:
		return messageStyle{symbol: "ℹ ", color: color.New(color.FgBlue)}
	case titleType:
		return messageStyle{color: color.New(color.Reset, color.Bold)}
	default:
		return messageStyle{color: color.New(color.Reset)}
	}
}

// notifier writes styled one-line messages.
type notifier struct {
	w io.Writer
}

func (n notifier) write(t messageType, format string, args ...any) {
	style := styleOf(t)

	_, err := style.color.Fprintf(n.w, "%s%s\n", style.symbol, fmt.Sprintf(format, args...))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "cli: failed to print message: %v\n", err)
	}
}

func (n notifier) errorf(format string, args ...any)    { n.write(errorType, format, args...) }
func (n notifier) warningf(format string, args ...any)  { n.write(warningType, format, args...) }
func (n notifier) activityf(format string, args ...any) { n.write(activityType, format, args...) }
func (n notifier) successf(format string, args ...any)  { n.write(successType, format, args...) }
func (n notifier) infof(format string, args ...any)     { n.write(infoType, format, args...) }
func (n notifier) titlef(format string, args ...any)    { n.write(titleType, format, args...) }
