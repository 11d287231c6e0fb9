package controllers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/app/services"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/bind"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/response"
	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/router"
)

// maxImageBytes caps product image uploads at 5 MB.
const maxImageBytes = 5 << 20

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// List returns the full catalog. Public.
func (c *CatalogController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.catalog.ListProducts(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Could not load products")
		return
	}
	response.Success(w, products)
}

// Get returns one product by id. Public.
func (c *CatalogController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := c.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not load product")
		return
	}
	response.Success(w, product)
}

// Create adds a product. Admin only.
func (c *CatalogController) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateProductInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.CreateProduct(r.Context(), in)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateProduct) {
			response.Conflict(w, "A product with this name already exists")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not create product")
		return
	}
	response.Created(w, product)
}

type adjustStockInput struct {
	Delta int `json:"delta" validate:"required"`
}

// AdjustStock applies a signed stock delta. Admin only.
func (c *CatalogController) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var in adjustStockInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	product, err := c.catalog.AdjustStock(r.Context(), id, in.Delta)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			response.NotFound(w)
		case errors.Is(err, services.ErrInsufficientStock):
			response.Conflict(w, "Adjustment would drive stock below zero")
		default:
			response.Error(w, http.StatusInternalServerError, "Could not adjust stock")
		}
		return
	}
	response.Success(w, product)
}

// Delete removes a product from the catalog. Admin only.
func (c *CatalogController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := c.catalog.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not delete product")
		return
	}
	response.Success(w, map[string]uint{"deleted": id})
}

// UploadImage attaches a product photo (multipart field "image"). Admin only.
func (c *CatalogController) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, ok := paramID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.Error(w, http.StatusBadRequest, `Missing "image" file field`)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		response.Error(w, http.StatusUnsupportedMediaType, "Only jpg, png and webp images are accepted")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil || len(data) > maxImageBytes {
		response.Error(w, http.StatusRequestEntityTooLarge, "Image exceeds 5 MB")
		return
	}

	url, err := c.catalog.AttachImage(r.Context(), id, data, ext)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			response.NotFound(w)
			return
		}
		response.Error(w, http.StatusInternalServerError, "Could not store image")
		return
	}
	response.Success(w, map[string]string{"image_url": url})
}

// paramID parses the {id} route parameter.
func paramID(r *http.Request) (uint, bool) {
	raw := router.Param(r, "id")
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
