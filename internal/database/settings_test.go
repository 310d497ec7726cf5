package database

import "testing"

func TestSettings_RoundTrip(t *testing.T) {
	db := newTestDB(t)

	val, err := db.GetSetting("log.level")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if val != "" {
		t.Fatalf("expected empty value for missing key, got %q", val)
	}

	if err := db.SetSetting("log.level", "debug"); err != nil {
		t.Fatalf("SetSetting returned error: %v", err)
	}
	if err := db.SetSetting("log.level", "trace"); err != nil {
		t.Fatalf("SetSetting overwrite returned error: %v", err)
	}

	val, err = db.GetSetting("log.level")
	if err != nil {
		t.Fatalf("GetSetting returned error: %v", err)
	}
	if val != "trace" {
		t.Fatalf("expected trace, got %q", val)
	}

	all, err := db.GetAllSettings()
	if err != nil {
		t.Fatalf("GetAllSettings returned error: %v", err)
	}
	if len(all) != 1 || all["log.level"] != "trace" {
		t.Fatalf("unexpected settings: %v", all)
	}

	if err := db.DeleteSetting("log.level"); err != nil {
		t.Fatalf("DeleteSetting returned error: %v", err)
	}
	if val, _ := db.GetSetting("log.level"); val != "" {
		t.Fatalf("expected setting to be removed, got %q", val)
	}
}
