package api

import (
	"net/http"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/color-game/swatchbook/models"
	"github.com/color-game/swatchbook/notation"
)

func TestParseColor(t *testing.T) {
	Convey("Given the parse endpoint", t, func() {
		env := newTestEnv()

		Convey("A hex color is described in every notation", func() {
			rec := env.do(http.MethodPost, "/v1/colors/parse", `{"input":"#f00"}`, nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			resp := decode[models.ColorParseResponse](rec)
			So(resp.Input, ShouldEqual, "#f00")
			So(resp.Color, ShouldResemble, notation.Red)
			So(resp.HSB.Hue, ShouldEqual, 360.0)
			So(resp.HSL.Lightness, ShouldEqual, 0.5)
			So(resp.Notations.Hex, ShouldEqual, "#f00")
			So(resp.Notations.RGB, ShouldEqual, "rgb(255, 0, 0)")
			So(resp.Notations.HSL, ShouldEqual, "hsl(360, 100%, 100%)")
			So(resp.Notations.ObjC, ShouldEqual, "[NSColor colorWithCalibratedRed:1.0 green:0.0 blue:0.0 alpha:1.0]")
			So(resp.Notations.CSS, ShouldEqual, "#f00")
		})

		Convey("The short flag drops the wrappers", func() {
			rec := env.do(http.MethodPost, "/v1/colors/parse", `{"input":"rgba(255, 0, 0, 0.5)","short":true}`, nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			resp := decode[models.ColorParseResponse](rec)
			So(resp.Notations.RGBA, ShouldEqual, "255, 0, 0, 0.5")
			So(resp.Notations.CSS, ShouldEqual, "rgb(255,0,0,0.5)")
		})

		Convey("Unparseable input is rejected with 422 naming the input", func() {
			rec := env.do(http.MethodPost, "/v1/colors/parse", `{"input":"chartreuse-ish"}`, nil)
			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)

			handlerErr := decode[HandlerError](rec)
			So(handlerErr.ErrorName, ShouldEqual, "Unrecognized Color Format")
			So(handlerErr.Description, ShouldContainSubstring, "chartreuse-ish")
		})

		Convey("Malformed JSON is a bad request", func() {
			rec := env.do(http.MethodPost, "/v1/colors/parse", `{"input":`, nil)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("GET is not allowed", func() {
			rec := env.do(http.MethodGet, "/v1/colors/parse", "", nil)
			So(rec.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(rec.Header().Get("Allow"), ShouldEqual, http.MethodPost)
		})
	})
}

func TestConvertColor(t *testing.T) {
	Convey("Given the convert endpoint", t, func() {
		env := newTestEnv()

		Convey("Anonymous callers get CSS by default", func() {
			rec := env.do(http.MethodPost, "/v1/colors/convert", `{"input":"[NSColor colorWithCalibratedRed:1.0 green:0.0 blue:0.0 alpha:0.5]"}`, nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			resp := decode[models.ColorConvertResponse](rec)
			So(resp.Format, ShouldEqual, notation.FormatCSS)
			So(resp.Output, ShouldEqual, "rgb(255,0,0,0.5)")
		})

		Convey("An explicit format wins", func() {
			rec := env.do(http.MethodPost, "/v1/colors/convert", `{"input":"#f00","format":" MacRuby ","short":true}`, nil)
			So(rec.Code, ShouldEqual, http.StatusOK)

			resp := decode[models.ColorConvertResponse](rec)
			So(resp.Format, ShouldEqual, notation.FormatMacRuby)
			So(resp.Output, ShouldEqual, "1 0 0 1")
		})

		Convey("Signed in callers get their preferred format", func() {
			user, cookie := env.addUser("painter", models.Member)
			user.PreferredFormat = string(notation.FormatRGB)
			env.users.Update(user)

			rec := env.do(http.MethodPost, "/v1/colors/convert", `{"input":"#fff"}`, cookie)
			So(rec.Code, ShouldEqual, http.StatusOK)

			resp := decode[models.ColorConvertResponse](rec)
			So(resp.Format, ShouldEqual, notation.FormatRGB)
			So(resp.Output, ShouldEqual, "rgb(255, 255, 255)")
		})

		Convey("An unknown format is a bad request", func() {
			rec := env.do(http.MethodPost, "/v1/colors/convert", `{"input":"#fff","format":"cmyk"}`, nil)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(decode[HandlerError](rec).ErrorName, ShouldEqual, "Unknown Output Format")
		})

		Convey("Unparseable input is rejected with 422", func() {
			rec := env.do(http.MethodPost, "/v1/colors/convert", `{"input":"#ggg","format":"hex"}`, nil)
			So(rec.Code, ShouldEqual, http.StatusUnprocessableEntity)
		})
	})
}

func TestListFormats(t *testing.T) {
	Convey("Every format is listed with a long and short example", t, func() {
		env := newTestEnv()

		rec := env.do(http.MethodGet, "/v1/colors/formats", "", nil)
		So(rec.Code, ShouldEqual, http.StatusOK)

		infos := decode[[]models.FormatInfo](rec)
		So(len(infos), ShouldEqual, len(notation.Formats()))
		So(infos[0].Name, ShouldEqual, notation.FormatHex)
		So(infos[2].Example, ShouldEqual, "rgba(204, 178, 153, 0.5)")
		So(infos[2].Short, ShouldEqual, "204, 178, 153, 0.5")
	})
}

func TestRandomColor(t *testing.T) {
	Convey("A random color is opaque and reparses to itself", t, func() {
		env := newTestEnv()

		rec := env.do(http.MethodGet, "/v1/colors/random?short=true", "", nil)
		So(rec.Code, ShouldEqual, http.StatusOK)

		resp := decode[models.ColorParseResponse](rec)
		So(resp.Color.Alpha, ShouldEqual, 1.0)
		So(resp.Input, ShouldEqual, resp.Notations.Hex)
		So(notation.MustParse(resp.Input).Equal(resp.Color), ShouldBeTrue)
		So(resp.Notations.RGB, ShouldNotStartWith, "rgb(")
	})
}
