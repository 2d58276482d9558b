package main

type Screen string

const (
	ScreenRoleSelect    Screen = "role-select"
	ScreenLogin         Screen = "login"
	ScreenDashboard     Screen = "dashboard"
	ScreenSubjectDetail Screen = "subject-detail"
	ScreenClassSetup    Screen = "class-setup"
	ScreenActiveClass   Screen = "active-class"
	ScreenStudentList   Screen = "student-list"
	ScreenStudentDetail Screen = "student-detail"
	ScreenAnalytics     Screen = "analytics"
)

// Router is a stack of screens; the bottom screen is the root and is never popped.
type Router struct {
	stack []Screen
}

func NewRouter(root Screen) *Router {
	return &Router{stack: []Screen{root}}
}

func (r *Router) Current() Screen {
	return r.stack[len(r.stack)-1]
}

// Push shows `s` on top of the current screen. Pushing the current screen again is a no-op.
func (r *Router) Push(s Screen) {
	if r.Current() == s {
		return
	}
	r.stack = append(r.stack, s)
}

// Replace swaps the current screen for `s`, keeping the root.
func (r *Router) Replace(s Screen) {
	if len(r.stack) == 1 {
		r.stack[0] = s
		return
	}
	r.stack[len(r.stack)-1] = s
}

// Back returns to the previous screen and reports whether it moved.
func (r *Router) Back() bool {
	if len(r.stack) == 1 {
		return false
	}
	r.stack = r.stack[:len(r.stack)-1]
	return true
}

// Reset drops the history and makes `root` the only screen.
func (r *Router) Reset(root Screen) {
	r.stack = append(r.stack[:0], root)
}

func (r *Router) Depth() int { return len(r.stack) }
