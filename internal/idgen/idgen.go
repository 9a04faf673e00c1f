package idgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// Generator produces "<prefix>_<unix-millis>_<suffix>" identifiers.
// Not a UUID: two IDs minted in the same millisecond only differ by the random suffix.
type Generator struct {
	now    Clock
	suffix func() string
}

func New(now Clock) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now, suffix: randomSuffix}
}

// Now exposes the generator's clock so timestamps and IDs agree
func (g *Generator) Now() time.Time {
	return g.now()
}

func (g *Generator) NewID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, g.now().UnixMilli(), g.suffix())
}

func (g *Generator) JobID() string          { return g.NewID("job") }
func (g *Generator) ApplicationID() string  { return g.NewID("app") }
func (g *Generator) NotificationID() string { return g.NewID("notif") }

// 9 lowercase hex chars, same width as the browser's base36 suffix
func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
