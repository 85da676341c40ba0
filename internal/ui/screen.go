package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// Screen is one page of the app.
type Screen interface {
	// Update runs once per frame and says what the manager should do next.
	Update() (Transition, error)
	Draw(dst *ebiten.Image)
	// OnEnter runs when the screen is pushed.
	OnEnter()
	// OnExit runs when the screen leaves the stack.
	OnExit()
	Name() string
}

// Transition is a screen's request to the manager after its update.
type Transition int

const (
	TransitionNone Transition = iota
	// TransitionPop removes the requesting screen.
	TransitionPop
)

// ScreenManager keeps the screen stack. Only the top screen is updated
// and drawn.
type ScreenManager struct {
	stack []Screen
}

func NewScreenManager() *ScreenManager {
	return &ScreenManager{}
}

func (sm *ScreenManager) Push(s Screen) {
	sm.stack = append(sm.stack, s)
	log.WithField("screen", s.Name()).Debug("screen entered")
	s.OnEnter()
}

// Pop exits and removes the top screen.
func (sm *ScreenManager) Pop() {
	if len(sm.stack) == 0 {
		return
	}
	top := sm.stack[len(sm.stack)-1]
	sm.stack = sm.stack[:len(sm.stack)-1]
	top.OnExit()
	log.WithField("screen", top.Name()).Debug("screen exited")
}

// ClearStack pops every screen, top first.
func (sm *ScreenManager) ClearStack() {
	for len(sm.stack) > 0 {
		sm.Pop()
	}
}

func (sm *ScreenManager) Current() Screen {
	if len(sm.stack) == 0 {
		return nil
	}
	return sm.stack[len(sm.stack)-1]
}

// Len is the number of screens on the stack.
func (sm *ScreenManager) Len() int {
	return len(sm.stack)
}

func (sm *ScreenManager) Update() error {
	s := sm.Current()
	if s == nil {
		return nil
	}
	tr, err := s.Update()
	if err != nil {
		return err
	}
	if tr == TransitionPop {
		sm.Pop()
	}
	return nil
}

func (sm *ScreenManager) Draw(dst *ebiten.Image) {
	if s := sm.Current(); s != nil {
		s.Draw(dst)
	}
}
