package migrations

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/afero"
)

func TestReadMigrationFiles(t *testing.T) {
	Convey("Given a migrations directory", t, func() {
		fs := afero.NewMemMapFs()
		So(fs.MkdirAll("migrations", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "migrations/002_create_daily_color.sql", []byte("CREATE TABLE daily_color ();"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "migrations/001_create_users.sql", []byte("CREATE TABLE users ();"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "migrations/migrations.go", []byte("package migrations"), 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "migrations/notes.sql", []byte("-- scratch"), 0o644), ShouldBeNil)
		So(fs.MkdirAll("migrations/003_archive.sql", 0o755), ShouldBeNil)

		Convey("Only versioned .sql files are read, in version order", func() {
			migrations, err := ReadMigrationFiles(fs, "migrations")

			So(err, ShouldBeNil)
			So(len(migrations), ShouldEqual, 2)
			So(migrations[0].ID(), ShouldEqual, "001_create_users")
			So(migrations[0].SQL, ShouldEqual, "CREATE TABLE users ();")
			So(migrations[1].Version, ShouldEqual, 2)
			So(migrations[1].Name, ShouldEqual, "create_daily_color")
		})

		Convey("Applied versions are skipped", func() {
			migrations, _ := ReadMigrationFiles(fs, "migrations")
			pending := Pending(migrations, map[int]bool{1: true})

			So(len(pending), ShouldEqual, 1)
			So(pending[0].ID(), ShouldEqual, "002_create_daily_color")
		})
	})

	Convey("A missing directory is an error", t, func() {
		_, err := ReadMigrationFiles(afero.NewMemMapFs(), "nowhere")
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "nowhere")
	})

	Convey("The shipped migrations are well formed", t, func() {
		migrations, err := ReadMigrationFiles(afero.NewOsFs(), ".")

		So(err, ShouldBeNil)
		So(len(migrations), ShouldEqual, 3)
		So(migrations[2].ID(), ShouldEqual, "003_create_swatches")
		So(migrations[2].SQL, ShouldContainSubstring, "CREATE TABLE IF NOT EXISTS swatches")
	})
}
