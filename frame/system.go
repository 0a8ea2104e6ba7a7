package frame

// System is one step of the per-frame loop. Systems may declare Resource fields,
// which the Scheduler wires to its Resources at registration, and may keep any
// other state they need between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
