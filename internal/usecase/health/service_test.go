package health

import "testing"

type mockIndex struct {
	ready bool
}

func (m *mockIndex) Ready() bool { return m.ready }

func TestCheck_Ready(t *testing.T) {
	svc := New(&mockIndex{ready: true})

	report := svc.Check()
	if report.Status != Healthy {
		t.Errorf("Status = %q, expected %q", report.Status, Healthy)
	}
	if report.Checks["index"] != CheckOK {
		t.Errorf("index check = %q, expected %q", report.Checks["index"], CheckOK)
	}
}

func TestCheck_NotReady(t *testing.T) {
	svc := New(&mockIndex{ready: false})

	report := svc.Check()
	if report.Status != Degraded {
		t.Errorf("Status = %q, expected %q", report.Status, Degraded)
	}
	if report.Checks["index"] != CheckError {
		t.Errorf("index check = %q, expected %q", report.Checks["index"], CheckError)
	}
}
