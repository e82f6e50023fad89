package http

import (
	"github.com/gin-gonic/gin"

	"nl-command-parser/internal/model"
	"nl-command-parser/pkg/response"
)

// Process godoc
// @Summary     Parse a natural-language command
// @Description Interprets free text against a reference date and returns one result per command clause, with temporal resolution, metadata and ranked intents.
// @Tags        Parse
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Text to parse"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/parse [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	key := cacheKey(req.Text, req.ReferenceDate, req.Timezone)
	if resp, ok := h.cache.get(key); ok {
		response.OK(c, resp)
		return
	}

	input, err := req.toInput(h.defaultTimezone)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Process(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, err, nil)
		return
	}

	resp := h.newProcessResp(output)
	h.cache.add(key, resp)
	response.OK(c, resp)
}

// scope builds the caller scope from request headers. The parser holds no
// user state; scope only travels into logs and downstream consumers.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		UserID:   c.GetHeader("X-User-ID"),
		Username: c.GetHeader("X-Username"),
	}
}
