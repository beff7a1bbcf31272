package input

// Action is the edge state of a single action key for one frame.
// Held is true on every frame the key is down, including the press frame.
type Action struct {
	Pressed  bool
	Held     bool
	Released bool
}

// Frame is everything the controller samples from input once per frame
type Frame struct {
	Action Action
	MouseX float32 // horizontal pointer motion, positive to the right
	MouseY float32 // vertical pointer motion, positive upwards
}

// Source delivers one Frame per engine frame
type Source interface {
	Poll() Frame
}

// Scripted replays a fixed list of frames, then reports idle frames.
type Scripted struct {
	frames []Frame
	next   int
}

func NewScripted(frames ...Frame) *Scripted {
	return &Scripted{frames: frames}
}

// Push appends frames to the end of the script
func (s *Scripted) Push(frames ...Frame) {
	s.frames = append(s.frames, frames...)
}

func (s *Scripted) Poll() Frame {
	if s.next >= len(s.frames) {
		return Frame{}
	}
	f := s.frames[s.next]
	s.next++
	return f
}

// Remaining is the number of scripted frames not yet polled
func (s *Scripted) Remaining() int {
	return len(s.frames) - s.next
}

// Frame helpers for building scripts

func Press() Frame {
	return Frame{Action: Action{Pressed: true, Held: true}}
}

func Hold() Frame {
	return Frame{Action: Action{Held: true}}
}

func Release() Frame {
	return Frame{Action: Action{Released: true}}
}

func Idle() Frame {
	return Frame{}
}

func Move(x, y float32) Frame {
	return Frame{MouseX: x, MouseY: y}
}

// Repeat returns n copies of f
func Repeat(f Frame, n int) []Frame {
	out := make([]Frame, n)
	for i := range out {
		out[i] = f
	}
	return out
}
