package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sandrolain/gojsh/pkg/types"
)

func (s *Server) handle(c echo.Context) error {
	req := c.Request()
	option := opc(c)
	segs := requestPath(req.URL.Path)

	body, err := io.ReadAll(req.Body)
	if err != nil {
		return s.fail(c, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !validOption(req.Method, option) {
		return s.fail(c, types.Errorf(types.ErrInvalidRequest, "Method '%s' with option '%s' isn't valid", req.Method, option))
	}
	if len(body) > 0 {
		s.logger.Debug("request body", "body", string(body))
	}

	mem := s.eval.Memory()
	switch req.Method {
	case http.MethodGet:
		v, err := mem.Get(segs)
		if err != nil {
			return s.fail(c, err)
		}
		return s.value(c, option, v)

	case http.MethodPost:
		v, err := s.evalAt(c, segs, string(body))
		if err != nil {
			return s.fail(c, err)
		}
		return s.value(c, option, v)

	case http.MethodPut:
		var v types.Value = types.String(body)
		if option == "json" {
			if v, err = parseBody(body); err != nil {
				return s.fail(c, err)
			}
		}
		if err := mem.Set(segs, v); err != nil {
			return s.fail(c, err)
		}
		if err := s.save(); err != nil {
			return s.fail(c, err)
		}
		return c.JSON(http.StatusOK, message("Updated"))

	case http.MethodPatch:
		v, err := parseBody(body)
		if err != nil {
			return s.fail(c, err)
		}
		if err := mem.Patch(segs, v, types.MergeDepth(option == "deep")); err != nil {
			return s.fail(c, err)
		}
		if err := s.save(); err != nil {
			return s.fail(c, err)
		}
		return c.JSON(http.StatusOK, message("Patched"))

	case http.MethodDelete:
		v, err := mem.Delete(segs)
		if err != nil {
			return s.fail(c, err)
		}
		if err := s.save(); err != nil {
			return s.fail(c, err)
		}
		return s.value(c, option, v)
	}
	return nil
}

// evalAt evaluates source with "this" and "" bound to the value at segs.
// Every other memory key except RootKey is dropped first.
func (s *Server) evalAt(c echo.Context, segs []string, source string) (types.Value, error) {
	mem := s.eval.Memory()
	s.eval.ResetMemory(RootKey)
	base, err := mem.Get(segs)
	if err != nil {
		return nil, err
	}
	if err := mem.Set([]string{""}, base); err != nil {
		return nil, err
	}
	if err := mem.Set([]string{"this"}, base); err != nil {
		return nil, err
	}
	v, err := s.eval.EvalJSH(c.Request().Context(), source)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return types.Null{}, nil
	}
	return v, nil
}

// save writes the root document to the store. A deleted root is saved as
// null.
func (s *Server) save() error {
	if s.store == nil {
		return nil
	}
	root, err := s.eval.Memory().Get([]string{RootKey})
	if types.IsNotFound(err) {
		root = types.Null{}
	} else if err != nil {
		return err
	}
	return s.store.Save(root)
}

func parseBody(body []byte) (types.Value, error) {
	v, err := types.Unmarshal(body)
	if err != nil {
		return nil, types.Errorf(types.ErrInvalidRequest, "Error procesing body: %s", err).WithCause(err)
	}
	return v, nil
}

// value writes v as JSON, or raw when opc is text and v is a string.
func (s *Server) value(c echo.Context, option string, v types.Value) error {
	if str, ok := v.(types.String); ok && option == "text" {
		return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(str))
	}
	data, err := types.Marshal(v)
	if err != nil {
		return s.fail(c, err)
	}
	contentType := echo.MIMEApplicationJSON
	if option == "text" {
		contentType = echo.MIMETextPlainCharsetUTF8
	}
	return c.Blob(http.StatusOK, contentType, data)
}

type messageBody struct {
	Message string `json:"message"`
}

func message(text string) messageBody {
	return messageBody{Message: text}
}

type errorBody struct {
	Error []string `json:"error"`
}

// Status maps an error to its HTTP status: bad calls are 400, missing
// values 404, anything else 500.
func Status(err error) int {
	switch {
	case types.IsNotFound(err):
		return http.StatusNotFound
	case types.IsBadCall(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c echo.Context, err error) error {
	status := Status(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("request rejected", "err", err)
	}
	return c.JSON(status, errorBody{Error: strings.Split(types.Message(err), "\n")})
}
