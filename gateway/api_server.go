package gateway

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"sync"

	"github.com/tiglabs/graphson"
	"github.com/tiglabs/graphson/util"
	"github.com/tiglabs/graphson/util/json"
	"github.com/tiglabs/graphson/util/log"
	"github.com/tiglabs/graphson/util/netutil"
)

const (
	// definition for http url parameter name
	FROM_VERSION = "from"
	TO_VERSION   = "to"
	VERSION      = "version"
	NORMALIZE    = "normalize"
)

type ApiServer struct {
	config     *Config
	httpServer *netutil.Server
	codecs     map[codecKey]*graphson.Codec
	wg         sync.WaitGroup
}

type codecKey struct {
	version   graphson.Version
	normalize bool
}

func NewApiServer(config *Config) *ApiServer {
	cfg := &netutil.ServerConfig{
		Name:      "gateway-api-server",
		Addr:      util.BuildAddr(config.HttpCfg.Ip, int(config.HttpCfg.Port)),
		Version:   config.ModuleCfg.Version,
		ConnLimit: int(config.HttpCfg.ConnLimit),
	}

	apiServer := &ApiServer{
		config:     config,
		httpServer: netutil.NewServer(cfg),
	}
	apiServer.initCodecs()
	apiServer.initAdminHandler()

	return apiServer
}

// initCodecs builds one codec per version and normalize flag. Codecs
// are immutable, so every request shares them.
func (s *ApiServer) initCodecs() {
	s.codecs = make(map[codecKey]*graphson.Codec)
	for _, version := range graphson.Versions() {
		for _, normalize := range []bool{false, true} {
			codec, err := graphson.NewCodec(version, normalize)
			if err != nil {
				log.Panic("fail to build codec[%v normalize=%v]. err[%v]", version, normalize, err)
			}
			s.codecs[codecKey{version: version, normalize: normalize}] = codec
		}
	}
}

func (s *ApiServer) codec(version graphson.Version, normalize bool) *graphson.Codec {
	return s.codecs[codecKey{version: version, normalize: normalize}]
}

func (s *ApiServer) Start() error {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if err := s.httpServer.Run(); err != nil {
			log.Error("api server run error[%v]", err)
		}
	}()

	log.Info("ApiServer has started on [%v]", s.config.HttpCfg.AdvertiseAddr)
	return nil
}

func (s *ApiServer) Close() {
	if s.httpServer != nil {
		s.httpServer.Close()
		s.httpServer = nil
	}

	s.wg.Wait()

	log.Info("ApiServer has closed")
}

func (s *ApiServer) initAdminHandler() {
	s.httpServer.Handle(netutil.POST, "/manage/doc/convert", s.handleDocConvert)
	s.httpServer.Handle(netutil.POST, "/manage/doc/normalize", s.handleDocNormalize)
	s.httpServer.Handle(netutil.POST, "/manage/doc/validate", s.handleDocValidate)
	s.httpServer.Handle(netutil.GET, "/manage/types/list", s.handleTypesList)
}

func (s *ApiServer) handleDocConvert(w http.ResponseWriter, r *http.Request, params netutil.UriParams) {
	from, err := checkVersionParam(w, r, FROM_VERSION)
	if err != nil {
		return
	}
	to, err := checkVersionParam(w, r, TO_VERSION)
	if err != nil {
		return
	}
	normalize, err := checkOptionalBoolParam(w, r, NORMALIZE)
	if err != nil {
		return
	}
	doc, err := readDocBody(w, r)
	if err != nil {
		return
	}

	value, err := s.codec(from, false).Unmarshal(doc)
	if err != nil {
		sendCodecErrReply(w, err)
		return
	}
	out, err := s.codec(to, normalize).Marshal(value)
	if err != nil {
		sendCodecErrReply(w, err)
		return
	}

	sendReply(w, newHttpSucReply(json.RawMessage(out)))
}

func (s *ApiServer) handleDocNormalize(w http.ResponseWriter, r *http.Request, params netutil.UriParams) {
	version, err := checkVersionParam(w, r, VERSION)
	if err != nil {
		return
	}
	doc, err := readDocBody(w, r)
	if err != nil {
		return
	}

	codec := s.codec(version, true)
	value, err := codec.Unmarshal(doc)
	if err != nil {
		sendCodecErrReply(w, err)
		return
	}
	out, err := codec.Marshal(value)
	if err != nil {
		sendCodecErrReply(w, err)
		return
	}

	sendReply(w, newHttpSucReply(json.RawMessage(out)))
}

func (s *ApiServer) handleDocValidate(w http.ResponseWriter, r *http.Request, params netutil.UriParams) {
	version, err := checkVersionParam(w, r, VERSION)
	if err != nil {
		return
	}
	doc, err := readDocBody(w, r)
	if err != nil {
		return
	}

	if _, err := s.codec(version, false).Unmarshal(doc); err != nil {
		sendCodecErrReply(w, err)
		return
	}

	sendReply(w, newHttpSucReply(&ValidateResult{Version: version.String(), Valid: true}))
}

func (s *ApiServer) handleTypesList(w http.ResponseWriter, r *http.Request, params netutil.UriParams) {
	version, err := checkVersionParam(w, r, VERSION)
	if err != nil {
		return
	}

	table := s.codec(version, false).Registry().Table()
	sendReply(w, newHttpSucReply(&TypesResult{
		Version:   version.String(),
		Namespace: table.Namespace(),
		Tags:      table.Tags(),
	}))
}

type ValidateResult struct {
	Version string `json:"version"`
	Valid   bool   `json:"valid"`
}

type TypesResult struct {
	Version   string   `json:"version"`
	Namespace string   `json:"namespace"`
	Tags      []string `json:"tags"`
}

type HttpReply struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func newHttpSucReply(data interface{}) *HttpReply {
	return &HttpReply{
		Code: ERRCODE_SUCCESS,
		Msg:  ErrSuc.Error(),
		Data: data,
	}
}

func newHttpErrReply(err error) *HttpReply {
	if err == nil {
		return newHttpSucReply("")
	}

	code, ok := Err2CodeMap[err]
	if ok {
		return &HttpReply{
			Code: code,
			Msg:  err.Error(),
		}
	} else {
		return &HttpReply{
			Code: ERRCODE_INTERNAL_ERROR,
			Msg:  ErrInternalError.Error(),
		}
	}
}

func sendCodecErrReply(w http.ResponseWriter, err error) {
	reply := newHttpErrReply(classifyCodecErr(err))
	newMsg := fmt.Sprintf("%s. %s", reply.Msg, err)
	reply.Msg = newMsg
	sendReply(w, reply)
}

func checkMissingParam(w http.ResponseWriter, r *http.Request, paramName string) (string, error) {
	paramVal := r.FormValue(paramName)
	if paramVal == "" {
		reply := newHttpErrReply(ErrParamError)
		newMsg := fmt.Sprintf("%s. missing[%s]", reply.Msg, paramName)
		reply.Msg = newMsg
		sendReply(w, reply)
		return "", ErrParamError
	}
	return paramVal, nil
}

func checkVersionParam(w http.ResponseWriter, r *http.Request, paramName string) (graphson.Version, error) {
	paramVal, err := checkMissingParam(w, r, paramName)
	if err != nil {
		return 0, err
	}

	version, err := graphson.ParseVersion(paramVal)
	if err != nil {
		reply := newHttpErrReply(ErrUnknownVersion)
		newMsg := fmt.Sprintf("%s[%s]", reply.Msg, paramVal)
		reply.Msg = newMsg
		sendReply(w, reply)
		return 0, ErrUnknownVersion
	}
	return version, nil
}

func checkOptionalBoolParam(w http.ResponseWriter, r *http.Request, paramName string) (bool, error) {
	paramVal := r.FormValue(paramName)
	if paramVal == "" {
		return false, nil
	}

	paramValBool, err := strconv.ParseBool(paramVal)
	if err != nil {
		reply := newHttpErrReply(ErrParamError)
		newMsg := fmt.Sprintf("%s, unmatched type[%s]", reply.Msg, paramName)
		reply.Msg = newMsg
		sendReply(w, reply)
		return false, ErrParamError
	}
	return paramValBool, nil
}

func readDocBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	doc, err := ioutil.ReadAll(r.Body)
	if err != nil {
		log.Error("fail to read request body. err:[%v]", err)
		sendReply(w, newHttpErrReply(ErrInternalError))
		return nil, ErrInternalError
	}
	if len(doc) == 0 {
		reply := newHttpErrReply(ErrParamError)
		newMsg := fmt.Sprintf("%s. missing[body]", reply.Msg)
		reply.Msg = newMsg
		sendReply(w, reply)
		return nil, ErrParamError
	}
	return doc, nil
}

func sendReply(w http.ResponseWriter, httpReply *HttpReply) {
	reply, err := json.Marshal(httpReply)
	if err != nil {
		log.Error("fail to marshal http reply[%v]. err:[%v]", httpReply, err)
		sendReply(w, newHttpErrReply(ErrInternalError))
		return
	}
	w.Header().Set("content-type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(reply)))
	if _, err := w.Write(reply); err != nil {
		log.Error("fail to write http reply[%s] len[%d]. err:[%v]", string(reply), len(reply), err)
	}
}
