package service

import "taskboard/internal/core/ports"

type noopRecorder struct{}

func (noopRecorder) AuthEvent(string, string) {}
func (noopRecorder) TaskMutation(string)      {}

func recorderOrNoop(recorder ports.EventRecorder) ports.EventRecorder {
	if recorder == nil {
		return noopRecorder{}
	}
	return recorder
}
