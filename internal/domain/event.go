package domain

import "time"

// Lifecycle event names emitted by the onboarding orchestrator.
const (
	EventStepCompleted      = "step_completed"
	EventStepSkipped        = "step_skipped"
	EventPlanSelected       = "plan_selected"
	EventPlanActivated      = "plan_activated"
	EventOnboardingFinished = "onboarding_finished"
)

// LifecycleEvent - a fire-and-forget analytics record describing a
// state-machine transition. Emission never blocks or fails the transition
// it describes.
type LifecycleEvent struct {
	Name     string         `json:"name"`
	ArtistID int64          `json:"artist_id"`
	Props    map[string]any `json:"props,omitempty"`
	At       time.Time      `json:"at"`
}
