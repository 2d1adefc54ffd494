package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/aromabeans/coffee-feedback/store"
	"github.com/aromabeans/coffee-feedback/utils"
)

// GetCategoriesHandler returns all feedback category names.
func (s *Server) GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	categories, err := s.store.Categories(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to list categories")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// AddCategoryHandler adds a category by name.
func (s *Server) AddCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}
	if err := s.store.AddCategory(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrExists) {
			utils.RespondError(w, http.StatusConflict, "Category already exists")
			return
		}
		s.log.WithError(err).Error("failed to add category")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to add category")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Category '%s' added", name)})
}

// DeleteCategoryHandler removes a category by name.
func (s *Server) DeleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteCategory(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Category not found")
			return
		}
		s.log.WithError(err).Error("failed to delete category")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Category '%s' deleted", name)})
}

// GetProductsHandler returns all products with prices.
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	products, err := s.store.Products(r.Context())
	if err != nil {
		s.log.WithError(err).Error("failed to list products")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{"products": products})
}

// AddProductHandler adds a product; price is optional and defaults to 0.
func (s *Server) AddProductHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}
	var price float64
	if p := r.FormValue("price"); p != "" {
		if _, err := fmt.Sscanf(p, "%f", &price); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid price")
			return
		}
	}
	if err := s.store.AddProduct(r.Context(), models.Product{Name: name, Price: price}); err != nil {
		if errors.Is(err, store.ErrExists) {
			utils.RespondError(w, http.StatusConflict, "Product already exists")
			return
		}
		s.log.WithError(err).Error("failed to add product")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to add product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Product '%s' added", name)})
}

// DeleteProductHandler removes a product by name.
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	name, ok := s.formName(w, r)
	if !ok {
		return
	}
	if err := s.store.DeleteProduct(r.Context(), name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.RespondError(w, http.StatusNotFound, "Product not found")
			return
		}
		s.log.WithError(err).Error("failed to delete product")
		utils.RespondError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Product '%s' deleted", name)})
}

// formName enforces POST + a non-empty "name" form field.
func (s *Server) formName(w http.ResponseWriter, r *http.Request) (string, bool) {
	if r.Method != http.MethodPost {
		utils.RespondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return "", false
	}
	if err := r.ParseForm(); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Error parsing form data")
		return "", false
	}
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		utils.RespondError(w, http.StatusBadRequest, "Name cannot be empty")
		return "", false
	}
	return name, true
}
