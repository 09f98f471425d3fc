package service

import (
	"errors"
	"fmt"

	"wearable_display/internal/display"
	"wearable_display/internal/models"
)

var (
	// ErrDisplayBusy means the controller's command queue is full; retry on a later tick.
	ErrDisplayBusy  = errors.New("display busy")
	ErrInvalidInput = errors.New("invalid input")
)

type NavigationService struct {
	display Display
}

func NewNavigationService(d Display) *NavigationService {
	return &NavigationService{display: d}
}

func (s *NavigationService) CurrentScreen() models.ScreenID {
	return s.display.CurrentScreen()
}

// SetScreen writes the register without a redraw.
func (s *NavigationService) SetScreen(id models.ScreenID) error {
	return s.display.SetCurrentScreen(id)
}

func (s *NavigationService) Navigate(nav models.NavContext) error {
	return command("navigate", s.display.Navigate(nav))
}

func (s *NavigationService) Gesture(g models.Gesture) error {
	if g == models.GestureNone {
		return fmt.Errorf("%w: gesture NONE", ErrInvalidInput)
	}
	return command("gesture", s.display.SubmitGesture(g))
}

func (s *NavigationService) Activity() {
	s.display.RegisterActivity()
}

// command maps a full command queue to ErrDisplayBusy and leaves other errors as they are.
func command(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, display.ErrFull) {
		return fmt.Errorf("%s: %w", op, ErrDisplayBusy)
	}
	return fmt.Errorf("%s: %w", op, err)
}
