package bollywood

// PID (Process ID) is a reference to an actor instance.
type PID struct {
	ID string
}

func (pid *PID) String() string {
	if pid == nil {
		return "<nil>"
	}
	return pid.ID
}
