package xlsexport

import "time"

func formatDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format("02.01.2006")
}

func intValue(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
