package main

import (
	"github.com/apex/log"
	"github.com/thejerf/suture/v4"
)

var SutureEventLabels = map[suture.EventType]string{
	suture.EventTypeStopTimeout:      "timeout",
	suture.EventTypeServicePanic:     "panic",
	suture.EventTypeServiceTerminate: "terminate",
	suture.EventTypeBackoff:          "backoff",
	suture.EventTypeResume:           "resume",
}

// MakeRootSupervisor returns the supervisor of the background services, such as file logging.
func MakeRootSupervisor() *suture.Supervisor {
	return suture.New("fuzzlog", suture.Spec{EventHook: EventHook})
}

func EventHook(event suture.Event) {
	log.
		WithField("message", event.String()).
		WithFields(log.Fields(event.Map())).
		Warnf("suture.%s", SutureEventLabels[event.Type()])
}
