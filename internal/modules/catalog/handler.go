package catalog

import (
	"net/http"

	"github.com/georgemunganga/inventory-backend/internal/platform/httpx"
	"github.com/go-chi/chi/v5"
)

// Handler exposes category and brand HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.listCategories)
		r.Post("/", h.createCategory)
		r.Get("/{id}", h.getCategory)
		r.Put("/{id}", h.updateCategory)
		r.Patch("/{id}", h.updateCategory)
		r.Delete("/{id}", h.deleteCategory)
	})
	r.Route("/brands", func(r chi.Router) {
		r.Get("/", h.listBrands) // ?category_id=...
		r.Post("/", h.createBrand)
		r.Get("/{id}", h.getBrand)
		r.Put("/{id}", h.updateBrand)
		r.Patch("/{id}", h.updateBrand)
		r.Delete("/{id}", h.deleteBrand)
	})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	views := make([]CategoryView, 0, len(categories))
	for _, c := range categories {
		views = append(views, CategoryToWire(c))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in CategoryInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.Error(w, r, err)
		return
	}
	c, err := h.service.CreateCategory(r.Context(), in)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, CategoryToWire(c))
}

func (h *Handler) getCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CategoryToWire(c))
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	var in CategoryInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.Error(w, r, err)
		return
	}
	c, err := h.service.UpdateCategory(r.Context(), chi.URLParam(r, "id"), in, r.Method == http.MethodPatch)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CategoryToWire(c))
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context(), r.URL.Query().Get("category_id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	views := make([]BrandView, 0, len(brands))
	for _, b := range brands {
		views = append(views, BrandToWire(b))
	}
	httpx.JSON(w, http.StatusOK, views)
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	var in BrandInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.Error(w, r, err)
		return
	}
	b, err := h.service.CreateBrand(r.Context(), in)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, BrandToWire(b))
}

func (h *Handler) getBrand(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetBrand(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BrandToWire(b))
}

func (h *Handler) updateBrand(w http.ResponseWriter, r *http.Request) {
	var in BrandInput
	if err := httpx.Decode(r, &in); err != nil {
		httpx.Error(w, r, err)
		return
	}
	b, err := h.service.UpdateBrand(r.Context(), chi.URLParam(r, "id"), in, r.Method == http.MethodPatch)
	if err != nil {
		httpx.Error(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BrandToWire(b))
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBrand(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpx.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
