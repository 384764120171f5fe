package exhibit

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/particle-exhibits/internal/logger"
)

// ErrInvalidSelection is returned when selecting a name no exhibit has.
var ErrInvalidSelection = errors.New("invalid selection")

// Selection names the exhibit that should be visible. None means no exhibit.
type Selection string

// None is the empty selection.
const None Selection = ""

// Switcher keeps at most one exhibit visible. The selection field is the
// single source of truth; exhibit flags follow it.
type Switcher struct {
	exhibits []*Exhibit
	byName   map[string]*Exhibit
	current  Selection
	active   []*Exhibit

	log *zap.Logger
}

// NewSwitcher creates a switcher over a fixed set of exhibits. The exhibit
// marked PlaceOnLoad, if any, starts as the current selection.
func NewSwitcher(exhibits ...*Exhibit) (*Switcher, error) {
	s := &Switcher{
		exhibits: exhibits,
		byName:   make(map[string]*Exhibit, len(exhibits)),
		active:   make([]*Exhibit, 0, 1),
		log:      logger.Named("switcher"),
	}

	for _, ex := range exhibits {
		if _, dup := s.byName[ex.Name()]; dup {
			return nil, fmt.Errorf("duplicate exhibit %q", ex.Name())
		}
		s.byName[ex.Name()] = ex

		if ex.PlaceOnLoad() {
			if s.current != None {
				return nil, fmt.Errorf("exhibits %q and %q both place on load", s.current, ex.Name())
			}
			s.current = Selection(ex.Name())
		}
	}

	return s, nil
}

// Select makes name the only visible exhibit. Selecting the current exhibit
// again is harmless. Unknown names return ErrInvalidSelection and change nothing.
func (s *Switcher) Select(name string) error {
	target, ok := s.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSelection, name)
	}

	for _, ex := range s.exhibits {
		if ex != target {
			ex.Remove()
		}
	}
	target.Add()

	if s.current != Selection(name) {
		s.log.Info("selected", zap.String("exhibit", name), zap.String("previous", string(s.current)))
	}
	s.current = Selection(name)
	return nil
}

// Clear hides every exhibit.
func (s *Switcher) Clear() {
	for _, ex := range s.exhibits {
		ex.Remove()
	}
	s.current = None
}

// Current returns the current selection.
func (s *Switcher) Current() Selection {
	return s.current
}

// Active returns the exhibits to animate this frame: the selected exhibit if
// it is active, otherwise nothing. The slice is reused between calls.
func (s *Switcher) Active() []*Exhibit {
	s.active = s.active[:0]
	if ex, ok := s.byName[string(s.current)]; ok && ex.IsActive() {
		s.active = append(s.active, ex)
	}
	return s.active
}

// Lookup returns the exhibit with the given name.
func (s *Switcher) Lookup(name string) (*Exhibit, bool) {
	ex, ok := s.byName[name]
	return ex, ok
}

// Exhibits returns all exhibits in configuration order.
func (s *Switcher) Exhibits() []*Exhibit {
	return s.exhibits
}

// Poll applies finished loads. Returns the exhibits whose load completed.
// A selected exhibit that failed earlier is shown again once a reload lands.
func (s *Switcher) Poll() []*Exhibit {
	var done []*Exhibit
	for _, ex := range s.exhibits {
		if !ex.Poll() {
			continue
		}
		done = append(done, ex)
		if Selection(ex.Name()) == s.current && ex.State() == StateLoaded && !ex.IsActive() {
			ex.Add()
		}
	}
	return done
}

// Close cancels all loads in flight.
func (s *Switcher) Close() {
	for _, ex := range s.exhibits {
		ex.Close()
	}
}
