package frame

// UpdateFrame is handed to every system during a single Scheduler.Once call.
// DeltaTime is in seconds.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Resources *Resources
}

func newUpdateFrame(dt float64, resources *Resources) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Resources: resources,
	}
}

// ElapsedMillis returns DeltaTime in milliseconds as a float32, the unit the
// transform rates are expressed in.
func (f *UpdateFrame) ElapsedMillis() float32 {
	return float32(f.DeltaTime * 1000)
}
