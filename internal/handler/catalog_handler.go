package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"gamecatalog/backend/internal/auth"
	"gamecatalog/backend/internal/ingest"
	"gamecatalog/backend/internal/schema"
	"gamecatalog/backend/internal/search"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// UploadResponse is returned after a dataset replaced the catalog.
type UploadResponse struct {
	Detail string `json:"detail" example:"File uploaded successfully"`
	Rows   int    `json:"rows" example:"2"`
}

// endregion

// CatalogHandler serves dataset uploads and searches.
type CatalogHandler struct {
	ingester       *ingest.Ingester
	search         *search.Service
	maxUploadBytes int64
}

// NewCatalogHandler creates the catalog handlers. A non-positive
// maxUploadBytes disables the upload size limit.
func NewCatalogHandler(ingester *ingest.Ingester, svc *search.Service, maxUploadBytes int64) *CatalogHandler {
	return &CatalogHandler{ingester: ingester, search: svc, maxUploadBytes: maxUploadBytes}
}

// UploadCSV godoc
// @Summary      Replace the catalog dataset
// @Description  Uploads a CSV file (or a JSON array of records) and atomically replaces the stored catalog with it.
// @Tags         catalog
// @Accept       multipart/form-data
// @Produce      json
// @Param        csv_file formData file true "Dataset file"
// @Success      200  {object}  UploadResponse
// @Failure      400  {object}  MissingColumnsResponse
// @Failure      413  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /uploadcsv/ [post]
func (h *CatalogHandler) UploadCSV(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	fh, err := c.FormFile("csv_file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Detail: "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: "csv_file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	var tbl *ingest.Table
	if strings.EqualFold(filepath.Ext(fh.Filename), ".json") {
		tbl, err = ingest.ReadJSON(f)
	} else {
		tbl, err = ingest.ReadCSV(f)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	n, err := h.ingester.Ingest(c.Request.Context(), tbl)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadResponse{Detail: "File uploaded successfully", Rows: n})
}

// SearchGames godoc
// @Summary      Search the catalog
// @Description  Returns every entry matching all given fields. Text and list fields match a case-insensitive substring; numeric and flag fields match exactly. Zero values and empty strings are ignored.
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        AppID               query  int     false  "App ID"
// @Param        Name                query  string  false  "Name substring"
// @Param        Release_date        query  string  false  "Release date substring"
// @Param        Required_age        query  int     false  "Required age"
// @Param        Price               query  number  false  "Price"
// @Param        DLC_count           query  int     false  "DLC count"
// @Param        About_the_game      query  string  false  "Description substring"
// @Param        Supported_languages query  string  false  "Language substring"
// @Param        Windows             query  int     false  "Windows support (1)"
// @Param        Mac                 query  int     false  "Mac support (1)"
// @Param        Linux               query  int     false  "Linux support (1)"
// @Param        Positive            query  int     false  "Positive reviews"
// @Param        Negative            query  int     false  "Negative reviews"
// @Param        Score_rank          query  int     false  "Score rank"
// @Param        Developers          query  string  false  "Developer substring"
// @Param        Publishers          query  string  false  "Publisher substring"
// @Param        Categories          query  string  false  "Category substring"
// @Param        Genres              query  string  false  "Genre substring"
// @Param        Tags                query  string  false  "Tag substring"
// @Success      200  {object}  search.Result
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /search [get]
func (h *CatalogHandler) SearchGames(c *gin.Context) {
	credential := c.GetString(auth.CredentialKey)
	if credential == "" {
		respondError(c, &search.AuthorizationError{Reason: "missing bearer token"})
		return
	}

	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		return
	}

	res, err := h.search.Search(c.Request.Context(), credential, criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// parseCriteria reads one criterion per known query parameter, accepting
// canonical names and their aliases. Unknown parameters are ignored.
func parseCriteria(c *gin.Context) (search.Criteria, error) {
	criteria := search.Criteria{}
	for key, vals := range c.Request.URL.Query() {
		f, ok := schema.Lookup(key)
		if !ok || len(vals) == 0 {
			continue
		}
		v, err := schema.ParseValue(f, vals[len(vals)-1])
		if err != nil {
			return nil, fmt.Errorf("invalid query parameter: %w", err)
		}
		if v != nil {
			criteria[f.Name] = v
		}
	}
	return criteria, nil
}
