package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"rut-calc-api/internal/config"
	"rut-calc-api/internal/logger"
)

func startServer(t *testing.T) (*Server, *fasthttp.Client, <-chan error) {
	t.Helper()

	cfg := config.Config{
		Greeting:     "Hello",
		APIKey:       "apikey",
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}
	s := New(cfg, logger.Discard())

	ln := fasthttputil.NewInmemoryListener()
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ln) }()

	client := &fasthttp.Client{
		Dial: func(addr string) (net.Conn, error) { return ln.Dial() },
	}
	return s, client, errc
}

func get(t *testing.T, c *fasthttp.Client, uri string) (int, string) {
	t.Helper()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI("http://test" + uri)
	require.NoError(t, c.DoTimeout(req, resp, time.Second))
	return resp.StatusCode(), string(resp.Body())
}

func TestServer_Routes(t *testing.T) {
	s, c, _ := startServer(t)
	t.Cleanup(func() { _ = s.Shutdown(context.Background()) })

	status, body := get(t, c, "/")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.Equal(t, "Hello !!", body)

	status, body = get(t, c, "/validate-rut?rut=10663351-7")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.JSONEq(t, `{"mensaje":"rut valido"}`, body)

	status, body = get(t, c, "/operaciones?operacion=suma&a=1&b=1")
	assert.Equal(t, fasthttp.StatusOK, status)
	assert.JSONEq(t, `{"resultado":2,"mensaje":"operacion exitosa"}`, body)

	status, body = get(t, c, "/operaciones?a=1&b=1")
	assert.Equal(t, fasthttp.StatusBadGateway, status)
	assert.JSONEq(t, `{"resultado":null,"mensaje":"operacion no pudo ser calculada"}`, body)
}

func TestServer_Shutdown(t *testing.T) {
	s, c, errc := startServer(t)

	status, _ := get(t, c, "/health")
	require.Equal(t, fasthttp.StatusOK, status)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after Shutdown")
	}
}
