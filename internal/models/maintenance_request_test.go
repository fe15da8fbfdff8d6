package models

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to TicketStatus
		want     bool
	}{
		{TicketNew, TicketInProgress, true},
		{TicketInProgress, TicketDone, true},
		{TicketNew, TicketDone, false},
		{TicketNew, TicketNew, false},
		{TicketInProgress, TicketNew, false},
		{TicketInProgress, TicketInProgress, false},
		{TicketDone, TicketNew, false},
		{TicketDone, TicketInProgress, false},
		{TicketDone, TicketDone, false},
	}
	for _, c := range cases {
		m := &MaintenanceRequest{Status: c.from}
		if got := m.CanTransition(c.to); got != c.want {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}
