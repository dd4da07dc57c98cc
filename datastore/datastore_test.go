package datastore

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildDBConnStr(t *testing.T) {
	Convey("The connection string carries every part", t, func() {
		So(BuildDBConnStr("pw", "postgres", "db:5432", "swatchbook", "disable"),
			ShouldEqual, "postgres://postgres:pw@db:5432/swatchbook?sslmode=disable")
	})
}

func TestStartOfDay(t *testing.T) {
	Convey("StartOfDay keeps the date and location", t, func() {
		loc := time.FixedZone("UTC+9", 9*60*60)
		day := StartOfDay(time.Date(2026, 10, 18, 23, 59, 59, 999, loc))

		So(day.Equal(time.Date(2026, 10, 18, 0, 0, 0, 0, loc)), ShouldBeTrue)
		So(day.Location(), ShouldEqual, loc)
		So(StartOfDay(day).Equal(day), ShouldBeTrue)
	})
}

func TestNoRowsError(t *testing.T) {
	Convey("NoRowsError wraps sql.ErrNoRows", t, func() {
		var err error = NoRowsError{true, sql.ErrNoRows}

		var noRows NoRowsError
		So(errors.As(err, &noRows), ShouldBeTrue)
		So(err.Error(), ShouldContainSubstring, "no rows")
	})
}
