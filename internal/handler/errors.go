package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/teamtree-io/teamtree/internal/resputil"
	"github.com/teamtree-io/teamtree/pkg/assignment"
)

// replyError maps engine errors onto the response envelope. Rejections keep
// their business meaning in the error code; anything else is a storage
// failure.
func replyError(c *gin.Context, err error) {
	if rej, ok := assignment.AsRejection(err); ok {
		switch rej.Kind {
		case assignment.KindNotFound:
			resputil.HTTPError(c, http.StatusNotFound, rej.Reason, resputil.NotFound)
		case assignment.KindCapacityExceeded:
			resputil.HTTPError(c, http.StatusConflict, rej.Reason, resputil.CapacityExceeded)
		case assignment.KindAlreadyAssigned:
			resputil.HTTPError(c, http.StatusConflict, rej.Reason, resputil.AlreadyAssigned)
		case assignment.KindQuotaExceeded:
			resputil.HTTPError(c, http.StatusConflict, rej.Reason, resputil.QuotaExceeded)
		case assignment.KindPrerequisiteMissing:
			resputil.HTTPError(c, http.StatusConflict, rej.Reason, resputil.PrerequisiteMissing)
		case assignment.KindInvalidParent:
			resputil.HTTPError(c, http.StatusBadRequest, rej.Reason, resputil.InvalidParent)
		default:
			resputil.Error(c, rej.Reason, resputil.NotSpecified)
		}
		return
	}
	var storageErr *assignment.StorageError
	if errors.As(err, &storageErr) {
		resputil.Error(c, storageErr.Error(), resputil.StorageFailure)
		return
	}
	resputil.Error(c, err.Error(), resputil.NotSpecified)
}

// pathID parses a numeric path parameter, replying 400 on garbage.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		resputil.HTTPError(c, http.StatusBadRequest, "invalid "+name+": "+raw, resputil.InvalidRequest)
		return 0, false
	}
	return uint(id), true
}
