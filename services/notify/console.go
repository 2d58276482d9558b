package notifysvc

import (
	"fmt"
	"io"
	"sync"

	"github.com/labstack/gommon/color"

	"github.com/trezcool/mahudhurio/core"
)

type consoleService struct {
	out   io.Writer
	color *color.Color
}

var _ core.Notifier = (*consoleService)(nil)

// NewConsoleService prints notifications to `out`, destructive ones in red.
// Colours are off when conf.NoColor is set.
func NewConsoleService(out io.Writer, conf *core.Config) core.Notifier {
	c := color.New()
	c.SetOutput(out)
	if conf.NoColor {
		c.Disable()
	}
	return &consoleService{out: out, color: c}
}

func (svc consoleService) Notify(notes ...core.Notification) {
	for _, n := range notes {
		svc.send(n)
	}
}

func (svc consoleService) send(n core.Notification) {
	marker, title := "*", n.Title
	if n.IsDestructive() {
		marker, title = svc.color.Red("!"), svc.color.Red(n.Title, color.B)
	}
	if n.Description == "" {
		_, _ = fmt.Fprintf(svc.out, "%s %s\n", marker, title)
		return
	}
	_, _ = fmt.Fprintf(svc.out, "%s %s: %s\n", marker, title, n.Description)
}

// ServiceMock records notifications instead of printing them.
type ServiceMock struct {
	mu   sync.Mutex
	Sent []core.Notification
}

var _ core.Notifier = (*ServiceMock)(nil)

func NewServiceMock() *ServiceMock {
	return &ServiceMock{Sent: make([]core.Notification, 0)}
}

func (svc *ServiceMock) Notify(notes ...core.Notification) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.Sent = append(svc.Sent, notes...)
}

// Last returns the most recent notification.
func (svc *ServiceMock) Last() (core.Notification, bool) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if len(svc.Sent) == 0 {
		return core.Notification{}, false
	}
	return svc.Sent[len(svc.Sent)-1], true
}

func (svc *ServiceMock) Reset() {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.Sent = svc.Sent[:0]
}
