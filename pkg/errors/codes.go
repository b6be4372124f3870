// Package errors provides centralized error code definitions for the retrosynth platform.
// All error codes are grouped by domain and mapped to HTTP status codes.
package errors

import "net/http"

// ErrorCode represents a typed error code used throughout the retrosynth platform.
// Codes are partitioned by domain to avoid conflicts and simplify maintenance.
type ErrorCode int

// ─────────────────────────────────────────────────────────────────────────────
// General / cross-cutting error codes  (1xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeOK indicates no error.
	CodeOK ErrorCode = 0

	// CodeUnknown is a catch-all for errors that have not been categorised.
	CodeUnknown ErrorCode = 10000

	// CodeInvalidParam is returned when one or more request parameters fail
	// validation (missing required fields, type mismatch, out-of-range values, etc.).
	CodeInvalidParam ErrorCode = 10001

	// CodeUnauthorized is returned when a request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = 10002

	// CodeForbidden is returned when authenticated credentials do not grant access
	// to the requested resource or action.
	CodeForbidden ErrorCode = 10003

	// CodeNotFound is returned when the requested resource does not exist.
	CodeNotFound ErrorCode = 10004

	// CodeConflict is returned when a create/update operation violates a uniqueness
	// or state constraint (e.g., duplicate resource, optimistic lock failure).
	CodeConflict ErrorCode = 10005

	// CodeRateLimit is returned when the caller has exceeded the allowed request rate.
	CodeRateLimit ErrorCode = 10006

	// CodeInternal is returned for unexpected server-side errors that are not
	// attributable to the caller.
	CodeInternal ErrorCode = 10007

	// CodeNotImplemented is returned when a requested feature or endpoint is
	// not yet implemented.
	CodeNotImplemented ErrorCode = 10008
)

// ─────────────────────────────────────────────────────────────────────────────
// Retrosynthesis engine error codes  (2xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeInvalidSMILES is returned when a target or precursor SMILES string
	// cannot be parsed or canonicalized by the chemistry adapter.
	CodeInvalidSMILES ErrorCode = 20001

	// CodeAdapterError is returned when a template-relevance, fast-filter, or
	// price-lookup adapter call fails or returns a malformed response.
	CodeAdapterError ErrorCode = 20002

	// CodeBadFormat is returned when an unsupported path-export format is
	// requested from GetBuyablePaths.
	CodeBadFormat ErrorCode = 20003

	// CodeOverflow is returned when an expansion would exceed a configured
	// resource ceiling (MaxChemicals, MaxReactions, MaxBranching).
	CodeOverflow ErrorCode = 20004

	// CodeEmptyOptions is returned when BuildTree is called before Configure
	// has supplied search options.
	CodeEmptyOptions ErrorCode = 20005

	// CodeEngineNotBuilt is returned when path enumeration or stats reporting
	// is requested before BuildTree has produced a tree.
	CodeEngineNotBuilt ErrorCode = 20006

	// CodeCycleRejected is returned when expansion proposes a precursor that
	// already lies on the ancestor path of the node being expanded.
	CodeCycleRejected ErrorCode = 20007
)

// ─────────────────────────────────────────────────────────────────────────────
// Chemistry adapter error codes  (3xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeMoleculeInvalidSMILES is returned when a provided SMILES string cannot
	// be parsed into a valid molecular graph.
	CodeMoleculeInvalidSMILES ErrorCode = 30001

	// CodeMoleculeNotFound is returned when a molecule with the requested
	// canonical SMILES or internal ID cannot be located in the buyables catalog.
	CodeMoleculeNotFound ErrorCode = 30002

	// CodeFingerprintError is returned when fingerprint generation (Morgan, MACCS,
	// topological, etc.) fails for a given molecule.
	CodeFingerprintError ErrorCode = 30003

	// CodeSimilarityCalcError is returned when a pairwise or batch similarity
	// computation fails due to invalid inputs or a downstream model error.
	CodeSimilarityCalcError ErrorCode = 30004
)

// ─────────────────────────────────────────────────────────────────────────────
// Template corpus error codes  (4xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeTemplateNotFound is returned when a template with the requested ID
	// does not exist in the template corpus.
	CodeTemplateNotFound ErrorCode = 40001

	// CodeTemplateApplyError is returned when applying a reaction template to
	// a target molecule fails to produce valid precursors.
	CodeTemplateApplyError ErrorCode = 40002
)

// ─────────────────────────────────────────────────────────────────────────────
// Route export error codes  (5xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeExportFailed is returned when mirroring the search DAG to an external
	// graph store fails.
	CodeExportFailed ErrorCode = 50001
)

// ─────────────────────────────────────────────────────────────────────────────
// Price / buyability error codes  (6xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodePriceLookupFailed is returned when the price oracle cannot be reached
	// or returns a malformed response for a buyability check.
	CodePriceLookupFailed ErrorCode = 60001
)

// ─────────────────────────────────────────────────────────────────────────────
// Infrastructure error codes  (7xxxx)
// ─────────────────────────────────────────────────────────────────────────────
const (
	// CodeDBConnectionError is returned when the application cannot establish or
	// re-use a connection to PostgreSQL or Neo4j.
	CodeDBConnectionError ErrorCode = 70001

	// CodeDBQueryError is returned when a database query fails due to syntax
	// errors, constraint violations (not covered by CodeConflict), or other
	// execution-time failures.
	CodeDBQueryError ErrorCode = 70007

	// CodeDatabaseError is a general error for database-related failures that
	// are not specifically connection issues.
	CodeDatabaseError ErrorCode = 70006

	// CodeCacheError is returned when a Redis operation (GET, SET, DEL, EVAL, etc.)
	// fails due to connection loss, timeout, or an unexpected response.
	CodeCacheError ErrorCode = 70002

	// CodeSearchError is returned when a downstream search/index query fails.
	CodeSearchError ErrorCode = 70003

	// CodeMessageQueueError is returned when producing to or consuming from a
	// Kafka topic fails (broker unavailable, serialisation error, offset commit, etc.).
	CodeMessageQueueError ErrorCode = 70004

	// CodeStorageError is returned when a remote graph-store mirroring operation
	// (Neo4j write, etc.) fails.
	CodeStorageError ErrorCode = 70005
)

// ─────────────────────────────────────────────────────────────────────────────
// String — human-readable name of the error code
// ─────────────────────────────────────────────────────────────────────────────

// String returns the human-readable name associated with an ErrorCode.
// It is safe to call on any value, including unknown codes.
func (c ErrorCode) String() string {
	switch c {
	// General
	case CodeOK:
		return "OK"
	case CodeUnknown:
		return "UNKNOWN"
	case CodeInvalidParam:
		return "INVALID_PARAM"
	case CodeUnauthorized:
		return "UNAUTHORIZED"
	case CodeForbidden:
		return "FORBIDDEN"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeConflict:
		return "CONFLICT"
	case CodeRateLimit:
		return "RATE_LIMIT"
	case CodeInternal:
		return "INTERNAL_ERROR"
	case CodeNotImplemented:
		return "NOT_IMPLEMENTED"

	// Retrosynthesis engine
	case CodeInvalidSMILES:
		return "INVALID_SMILES"
	case CodeAdapterError:
		return "ADAPTER_ERROR"
	case CodeBadFormat:
		return "BAD_FORMAT"
	case CodeOverflow:
		return "OVERFLOW"
	case CodeEmptyOptions:
		return "EMPTY_OPTIONS"
	case CodeEngineNotBuilt:
		return "ENGINE_NOT_BUILT"
	case CodeCycleRejected:
		return "CYCLE_REJECTED"

	// Chemistry adapter
	case CodeMoleculeInvalidSMILES:
		return "MOLECULE_INVALID_SMILES"
	case CodeMoleculeNotFound:
		return "MOLECULE_NOT_FOUND"
	case CodeFingerprintError:
		return "FINGERPRINT_ERROR"
	case CodeSimilarityCalcError:
		return "SIMILARITY_CALC_ERROR"

	// Template corpus
	case CodeTemplateNotFound:
		return "TEMPLATE_NOT_FOUND"
	case CodeTemplateApplyError:
		return "TEMPLATE_APPLY_ERROR"

	// Route export
	case CodeExportFailed:
		return "EXPORT_FAILED"

	// Price / buyability
	case CodePriceLookupFailed:
		return "PRICE_LOOKUP_FAILED"

	// Infrastructure
	case CodeDBConnectionError:
		return "DB_CONNECTION_ERROR"
	case CodeDBQueryError:
		return "DB_QUERY_ERROR"
	case CodeDatabaseError:
		return "DATABASE_ERROR"
	case CodeCacheError:
		return "CACHE_ERROR"
	case CodeSearchError:
		return "SEARCH_ERROR"
	case CodeMessageQueueError:
		return "MESSAGE_QUEUE_ERROR"
	case CodeStorageError:
		return "STORAGE_ERROR"

	default:
		return "UNKNOWN_CODE"
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// HTTPStatus — mapping from domain error codes to HTTP status codes
// ─────────────────────────────────────────────────────────────────────────────

// HTTPStatus returns the most appropriate HTTP status code for the given ErrorCode.
// The mapping follows RFC 9110 semantics and is used by internal/interfaces/http
// to translate domain errors into HTTP responses.
//
// Decision matrix:
//   - 200 OK              → CodeOK
//   - 400 Bad Request     → CodeInvalidParam, CodeInvalidSMILES, CodeMoleculeInvalidSMILES,
//     CodeBadFormat, CodeEmptyOptions, CodeCycleRejected
//   - 401 Unauthorized    → CodeUnauthorized
//   - 403 Forbidden       → CodeForbidden
//   - 404 Not Found       → CodeNotFound, CodeMoleculeNotFound, CodeTemplateNotFound
//   - 409 Conflict        → CodeConflict, CodeEngineNotBuilt
//   - 413 Payload Too Lrg → CodeOverflow
//   - 429 Too Many Req.   → CodeRateLimit
//   - 501 Not Implemented → CodeNotImplemented
//   - 503 Service Unavail → CodeDBConnectionError, CodeMessageQueueError, CodeAdapterError,
//     CodePriceLookupFailed
//   - 500 Internal Server → everything else
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK

	case CodeInvalidParam,
		CodeInvalidSMILES,
		CodeMoleculeInvalidSMILES,
		CodeBadFormat,
		CodeEmptyOptions,
		CodeCycleRejected:
		return http.StatusBadRequest

	case CodeUnauthorized:
		return http.StatusUnauthorized

	case CodeForbidden:
		return http.StatusForbidden

	case CodeNotFound,
		CodeMoleculeNotFound,
		CodeTemplateNotFound:
		return http.StatusNotFound

	case CodeConflict,
		CodeEngineNotBuilt:
		return http.StatusConflict

	case CodeOverflow:
		return http.StatusRequestEntityTooLarge

	case CodeRateLimit:
		return http.StatusTooManyRequests

	case CodeDBConnectionError,
		CodeMessageQueueError,
		CodeAdapterError,
		CodePriceLookupFailed:
		return http.StatusServiceUnavailable

	case CodeDBQueryError, CodeExportFailed, CodeStorageError:
		return http.StatusInternalServerError

	case CodeNotImplemented:
		return http.StatusNotImplemented

	default:
		// CodeUnknown, CodeInternal, CodeFingerprintError, CodeSimilarityCalcError,
		// CodeTemplateApplyError, CodeCacheError, CodeSearchError, and all
		// unrecognised codes.
		return http.StatusInternalServerError
	}
}
