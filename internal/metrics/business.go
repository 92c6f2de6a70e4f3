package metrics

// IncrementReportCreated increments the report creation counter
func (m *Metrics) IncrementReportCreated() {
	m.safeExecute("IncrementReportCreated", func() {
		m.ReportsCreatedTotal.Inc()
	})
}

// IncrementParticipantRegistered increments the participant registration counter
func (m *Metrics) IncrementParticipantRegistered() {
	m.safeExecute("IncrementParticipantRegistered", func() {
		m.ParticipantsRegisteredTotal.Inc()
	})
}

// IncrementParticipantDedup increments the counter for registration attempts
// that were silently resolved to an existing registered participant
func (m *Metrics) IncrementParticipantDedup() {
	m.safeExecute("IncrementParticipantDedup", func() {
		m.ParticipantDedupTotal.Inc()
	})
}

// AddOrphansCleaned adds to the cleanup counter
func (m *Metrics) AddOrphansCleaned(count int) {
	m.safeExecute("AddOrphansCleaned", func() {
		m.OrphansCleanedTotal.Add(float64(count))
	})
}

// SetReportsTotal sets the total reports gauge
func (m *Metrics) SetReportsTotal(count int64) {
	m.safeExecute("SetReportsTotal", func() {
		m.ReportsTotal.Set(float64(count))
	})
}

// SetParticipantsTotal sets the total participants gauge
func (m *Metrics) SetParticipantsTotal(count int64) {
	m.safeExecute("SetParticipantsTotal", func() {
		m.ParticipantsTotal.Set(float64(count))
	})
}
