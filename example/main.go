//go:generate go run github.com/jesmaz/poly-enum/cmd/polyenum .

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

type jobState struct {
	State string `json:"state"`
	Event string `json:"event"`
	Kind  uint8  `json:"kind"`
}

// newServer serves the last event of each job. A job is reported by the
// narrowest sub-enum which holds its last event.
func newServer(jobs map[string][]Event) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.GET("/jobs/:id", func(c echo.Context) error {
		history, ok := jobs[c.Param("id")]
		if !ok || len(history) == 0 {
			return echo.NewHTTPError(http.StatusNotFound, "unknown job")
		}
		last := history[len(history)-1]

		if f, ok := EventToFinished(last); ok && f != nil {
			return c.JSON(statusCode(f), jobState{"finished", f.String(), uint8(f.Kind())})
		}
		if a, ok := EventAsActive(last); ok && a != nil {
			return c.JSON(http.StatusAccepted, jobState{"active", a.String(), uint8(a.Kind())})
		}
		p, _ := EventToPending(last)
		return c.JSON(http.StatusAccepted, jobState{"pending", p.String(), uint8(p.Kind())})
	})
	return e
}

func main() {
	queuedAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	jobs := map[string][]Event{
		"1": {Event_Queued{at: queuedAt}, Event_Started{worker: "w1"}, Event_Done{}},
		"2": {Event_Queued{at: queuedAt}, Event_Started{worker: "w2"}, Event_Failed{reason: "disk full"}},
		"3": {Event_Queued{at: queuedAt}, Event_Started{worker: "w3"}, Event_Progress{percent: 40}},
		"4": {Event_Queued{at: queuedAt}},
	}

	e := newServer(jobs)
	for _, id := range []string{"1", "2", "3", "4", "5"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs/"+id, nil))
		fmt.Println(id, rec.Code, strings.TrimSpace(rec.Body.String()))
	}

	// Started is both pending and active, so it converts laterally.
	if a, ok := PendingToActive(Pending_Started{worker: "w4"}); ok {
		fmt.Println("lateral:", a)
	}
	if _, ok := PendingToActive(Pending_Queued{at: queuedAt}); !ok {
		fmt.Println("lateral: Queued is not active")
	}

	// A mutable view writes through to an event held by pointer.
	history := []Event{Event_Queued{at: queuedAt}, &Event_Progress{percent: 40}}
	if a, ok := EventAsActiveMut(&history[1]); ok {
		a.(*Active_Progress).percent = 90
	}
	fmt.Println("progress:", history[1])
}
