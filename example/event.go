//go:build polyenum

package main

import (
	"net/http"
	"time"
)

// Event is a lifecycle event of a job.
//
//polyenum:enum
//polyenum:repr uint8
//polyenum:propagate String
type Event interface {
	//polyenum:sub Pending
	Queued(at time.Time)
	//polyenum:sub Pending, Active
	Started(worker string)
	//polyenum:sub Active
	Progress(percent int)
	//polyenum:sub Finished
	Done()
	//polyenum:sub Finished
	//polyenum:discriminant 10
	Failed(reason string)
}

// statusCode is the HTTP status of a job which has finished.
func statusCode(f Finished) int {
	switch f.Kind() {
	case FinishedKindDone:
		return http.StatusOK
	case FinishedKindFailed:
		return http.StatusInternalServerError
	}
	return http.StatusNotImplemented
}
