package httperrors

import (
	"net/http"

	"github/kontos/connect/internal/types"
)

var (
	ErrBadRequestInvalidPairingURI = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeINVALIDPAIRINGURI, "Pairing URI is not a valid wc: URI with a query part.")
	ErrBadRequestUnsupportedMethod = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeUNSUPPORTEDMETHOD, "Method is not on the supported session request method list.")
	ErrNotFoundSession             = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeGeneric, "Session not found.")
	ErrNotFoundRequest             = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeGeneric, "Session request not found.")
	ErrConflictSessionState        = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeSESSIONSTATECONFLICT, "Session is not in a state that allows this transition.")
	ErrConflictRequestResolved     = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeREQUESTALREADYRESOLVED, "Session request has already been resolved.")
	ErrConflictPopupOpen           = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypePOPUPALREADYOPEN, "A wallet popup is already open for this owner.")
)
