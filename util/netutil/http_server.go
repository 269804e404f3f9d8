package netutil

import (
	"io"
	"net"
	"net/http"
	"net/http/pprof"
	"os"
	"sync/atomic"

	"github.com/julienschmidt/httprouter"
	"github.com/tiglabs/graphson/util/log"
	"golang.org/x/net/netutil"
)

type ServerConfig struct {
	Name      string
	Addr      string // ip:port
	Version   string
	ConnLimit int
}

// Server is a http server
type Server struct {
	cfg    *ServerConfig
	server *http.Server
	router *httprouter.Router
	closed int64
}

// NewServer creates the server with given configuration.
func NewServer(config *ServerConfig) *Server {
	s := &Server{
		cfg:    config,
		router: httprouter.New(),
	}

	s.Handle(GET, "/debug/ping", PingPong)
	s.Handle(GET, "/debug/pprof", debugDumpHandler(pprof.Index))
	s.Handle(GET, "/debug/pprof/cmdline", debugDumpHandler(pprof.Cmdline))
	s.Handle(GET, "/debug/pprof/profile", debugDumpHandler(pprof.Profile))
	s.Handle(GET, "/debug/pprof/symbol", debugDumpHandler(pprof.Symbol))
	s.Handle(GET, "/debug/pprof/trace", debugDumpHandler(pprof.Trace))

	return s
}

const (
	GET     HttpMethod = 1
	POST    HttpMethod = 2
	PUT     HttpMethod = 3
	DELETE  HttpMethod = 4
	HEAD    HttpMethod = 5
	OPTIONS HttpMethod = 6
	PATCH   HttpMethod = 7
)

type HttpMethod int32

func (m *HttpMethod) name() string {
	switch *m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case PUT:
		return "PUT"
	case DELETE:
		return "DELETE"
	case HEAD:
		return "HEAD"
	case OPTIONS:
		return "OPTIONS"
	case PATCH:
		return "PATCH"
	default:
		panic("invalid http method. never happened!!!")
	}
}

type UriParams map[string]string

type Handle func(http.ResponseWriter, *http.Request, UriParams)

func (s *Server) Handle(method HttpMethod, uri string, handle Handle) {
	h := func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		uriParams := make(map[string]string)
		for _, param := range params {
			if _, ok := uriParams[param.Key]; !ok {
				uriParams[param.Key] = param.Value
			}
		}
		handle(w, r, uriParams)
	}
	s.router.Handle(method.name(), uri, h)
}

// Close closes the server.
func (s *Server) Close() {
	if !atomic.CompareAndSwapInt64(&s.closed, 0, 1) {
		// server is already closed
		return
	}

	if s.server != nil {
		s.server.Close()
	}
}

// isClosed checks whether server is closed or not.
func (s *Server) isClosed() bool {
	return atomic.LoadInt64(&s.closed) == 1
}

// Run runs the server.
func (s *Server) Run() error {
	l, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		log.Error("Fail to listen:[%v]. err:%v", s.cfg.Addr, err)
		return err
	}
	if s.cfg.ConnLimit > 0 {
		l = netutil.LimitListener(l, s.cfg.ConnLimit)
	}

	s.server = &http.Server{
		Handler: s.router,
	}
	if err = s.server.Serve(l); err != nil && !s.isClosed() {
		log.Error("http.listenAndServe failed: %s", err)
		return err
	}
	return nil
}

func (s *Server) Name() string {
	return s.cfg.Name
}

// Helper handlers

type ResponseWriter struct {
	http.ResponseWriter
	writer io.Writer
}

func NewResponseWriter(w http.ResponseWriter, writer io.Writer) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, writer: writer}
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.writer == nil {
		return w.ResponseWriter.Write(b)
	}
	return w.writer.Write(b)
}

func PingPong(w http.ResponseWriter, _ *http.Request, _ UriParams) {
	w.Write([]byte("ok"))
}

// debugDumpHandler adapts a pprof endpoint so its output can be diverted
// to a local file with ?file=<path>.
func debugDumpHandler(h http.HandlerFunc) Handle {
	return func(w http.ResponseWriter, r *http.Request, _ UriParams) {
		var output io.Writer = w
		if file := r.FormValue("file"); file != "" {
			f, err := os.Create(file)
			if err != nil {
				log.Error("graphson-debug: create file failed(%v), path=%v", err, file)
				return
			}
			defer f.Close()
			output = f
		}
		h(NewResponseWriter(w, output), r)
	}
}
