package cli

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/color-game/swatchbook/notation"
)

func run(args ...string) (string, string, error) {
	var out, errOut bytes.Buffer
	err := Run(args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestConvert(t *testing.T) {
	Convey("Given the convert command", t, func() {
		Convey("It renders CSS by default", func() {
			out, _, err := run("convert", "rgba(255, 0, 0, 0.5)")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "rgb(255,0,0,0.5)\n")
		})

		Convey("The --to flag picks the notation", func() {
			out, _, err := run("convert", "#f00", "--to", "objc")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "[NSColor colorWithCalibratedRed:1.0 green:0.0 blue:0.0 alpha:1.0]\n")
		})

		Convey("The --short flag drops wrappers", func() {
			out, _, err := run("convert", "-t", "hsla", "-s", "#f00")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "360, 100%, 100%, 1\n")
		})

		Convey("Unquoted notations with spaces are joined", func() {
			out, _, err := run("convert", "rgb(255,", "255,", "255)", "--to", "hex")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "#fff\n")
		})

		Convey("The environment supplies a default notation", func() {
			So(os.Setenv("COLORCONV_TO", "macruby"), ShouldBeNil)
			defer os.Unsetenv("COLORCONV_TO")

			out, _, err := run("convert", "#000")
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "NSColor.colorWithCalibratedRed(0, green: 0, blue: 0, alpha: 1)\n")

			Convey("But an explicit flag still wins", func() {
				out, _, err := run("convert", "#000", "--to", "rgb")
				So(err, ShouldBeNil)
				So(out, ShouldEqual, "rgb(0, 0, 0)\n")
			})
		})

		Convey("Unparseable input fails with the input in the message", func() {
			_, errOut, err := run("convert", "mauve")
			So(errors.Is(err, notation.ErrUnrecognizedColorFormat), ShouldBeTrue)
			So(errOut, ShouldContainSubstring, `"mauve"`)
		})

		Convey("Unknown notations fail", func() {
			_, _, err := run("convert", "#fff", "--to", "cmyk")
			So(errors.Is(err, notation.ErrUnknownFormat), ShouldBeTrue)
		})

		Convey("A color argument is required", func() {
			_, _, err := run("convert")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestInspect(t *testing.T) {
	Convey("Inspect shows components and every notation", t, func() {
		out, _, err := run("inspect", "0.81 0.72 0.63 0.54")
		So(err, ShouldBeNil)

		So(out, ShouldContainSubstring, "Components")
		So(out, ShouldContainSubstring, "0.8100 0.7200 0.6300 0.5400")
		So(out, ShouldContainSubstring, "Notations")
		So(out, ShouldContainSubstring, "hsla(29, 22%, 81%, 0.54)")
		So(out, ShouldContainSubstring, "[NSColor colorWithCalibratedRed:0.81 green:0.72 blue:0.63 alpha:0.54]")

		lines := strings.Split(strings.TrimSpace(out), "\n")
		So(len(lines), ShouldBeGreaterThan, len(notation.Formats())+4)
	})
}

func TestFormats(t *testing.T) {
	Convey("Given the formats command", t, func() {
		Convey("Raw output lists the names in order", func() {
			out, _, err := run("formats", "--raw")
			So(err, ShouldBeNil)
			So(strings.Fields(out), ShouldResemble, []string{
				"hex", "rgb", "rgba", "hsl", "hsla", "objc", "macruby", "css-rgb", "css-rgba", "css",
			})
		})

		Convey("Examples follow each name", func() {
			out, _, err := run("formats")
			So(err, ShouldBeNil)
			So(out, ShouldContainSubstring, "rgba(204, 178, 153, 0.5)")
			So(out, ShouldContainSubstring, "rgb(203,178,152,0.5)")
		})
	})
}
