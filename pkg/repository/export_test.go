package repository

// ResetInstance forgets the process-wide repository so tests can call Open again.
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()

	if instance != nil {
		instance.Close()
	}

	instance = nil
}
