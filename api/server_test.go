package api

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestServe(t *testing.T) {
	Convey("Given the API server", t, func() {
		env := newTestEnv()

		Convey("It is built with timeouts around the routed handler", func() {
			env.app.Config.HTTPPort = ":9090"
			srv := env.app.newServer(http.NewServeMux())

			So(srv.Addr, ShouldEqual, ":9090")
			So(srv.ReadTimeout, ShouldEqual, 10*time.Second)
			So(srv.WriteTimeout, ShouldEqual, 30*time.Second)
			So(srv.Handler, ShouldNotBeNil)
		})

		Convey("It shuts down cleanly when its context ends", func() {
			ctx, cancel := context.WithCancel(context.Background())
			srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

			time.AfterFunc(50*time.Millisecond, cancel)
			So(env.app.serve(ctx, srv), ShouldBeNil)
		})

		Convey("It reports an address that cannot be bound", func() {
			taken, err := net.Listen("tcp", "127.0.0.1:0")
			So(err, ShouldBeNil)
			defer taken.Close()

			srv := &http.Server{Addr: taken.Addr().String(), Handler: http.NotFoundHandler()}
			So(env.app.serve(context.Background(), srv), ShouldNotBeNil)
		})
	})
}
