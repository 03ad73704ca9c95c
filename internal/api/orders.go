package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"canteen_system/internal/domain" // Importing domain models
	"canteen_system/internal/flash"  // Flash messages
	"canteen_system/internal/menu"   // Fixed menu catalog

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// IndexHandler renders the menu page
func IndexHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"menu":     menu.Items,           // Fixed menu
			"username": c.GetString("username"), // Authenticated user
			"flash":    flash.Take(c),        // Pending message, if any
		})
	}
}

// selectedLines turns the submitted quantity form into order line items with
// price snapshots, and their total. Absent, malformed, or non-positive
// quantities are treated as zero and never produce a line.
func selectedLines(form func(string) string) ([]domain.OrderItem, int) {
	var items []domain.OrderItem // Surviving lines
	total := 0                   // Sum of subtotals
	for _, m := range menu.Items {
		qty, err := strconv.Atoi(form("qty_" + strconv.Itoa(m.ID))) // Requested quantity
		// Malformed input counts as zero, not as an error
		if err != nil || qty <= 0 {
			continue
		}
		// Snapshot the catalog price at order time
		items = append(items, domain.OrderItem{Name: m.Name, Qty: qty, Price: m.Price})
		total += m.Price * qty
	}
	return items, total
}

// PlaceOrderHandler converts the submitted quantities into a persisted order.
// The order row and all of its line items are written in one transaction: a
// failure partway leaves nothing behind.
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")   // Authenticated user
		items, total := selectedLines(c.PostForm) // Build the line items
		// An order needs at least one selected item
		if len(items) == 0 {
			flash.Set(c, "Please select at least one item.")
			c.Redirect(http.StatusFound, "/")
			return
		}
		order := domain.Order{Username: username, Total: total} // Order header
		// Atomic write of the order and its items
		err := db.Transaction(func(tx *gorm.DB) error {
			// Create the order header
			if err := tx.Create(&order).Error; err != nil {
				return err // Return error to rollback
			}
			// Create each line item attached to the order
			for i := range items {
				items[i].OrderID = order.ID
				if err := tx.Create(&items[i]).Error; err != nil {
					return err // Return error to rollback
				}
			}
			return nil // Commit transaction
		})
		// Handle transaction result
		if err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"username": username,    // Ordering user
				"total":    total,       // Order total
				"error":    err.Error(), // Error message
			}).Error("Order failed") // Log order failure
			c.String(http.StatusInternalServerError, "Order failed")
			return
		}
		// Log successful order
		logrus.WithFields(logrus.Fields{
			"username": username,    // Ordering user
			"order_id": order.ID,    // New order ID
			"total":    total,       // Order total
			"items":    len(items),  // Line item count
		}).Info("Order placed")
		// Render the receipt
		c.HTML(http.StatusOK, "order_success.html", gin.H{
			"items":    items,    // Ordered lines
			"total":    total,    // Order total
			"username": username, // Ordering user
		})
	}
}

// MyOrdersHandler lists the caller's orders, newest first
func MyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username") // Authenticated user
		var orders []domain.Order           // Slice to hold orders
		// Fetch the caller's orders with their items, newest first
		if err := db.Preload("Items").Where("username = ?", username).Order("id desc").Find(&orders).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		c.HTML(http.StatusOK, "my_orders.html", gin.H{
			"orders":   orders,   // The caller's orders
			"username": username, // Authenticated user
			"flash":    flash.Take(c),
		})
	}
}

// AdminOrdersHandler lists all orders, newest first, with pagination
func AdminOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := 1      // Default page number
		pageSize := 20 // Default page size
		// Check and set page number from query params
		if p := c.Query("page"); p != "" {
			if v, err := strconv.Atoi(p); err == nil && v > 0 {
				page = v // Set page if valid
			}
		}
		// Check and set page size within limits
		if ps := c.Query("page_size"); ps != "" {
			if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
				pageSize = v // Set page size
			}
		}
		offset := (page - 1) * pageSize // Calculate offset for pagination
		var total int64                 // Total order count
		// Count all orders for pagination
		if err := db.Model(&domain.Order{}).Count(&total).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to count orders")
			return
		}
		var orders []domain.Order // Slice to hold orders
		// Fetch paginated orders with their items, newest first
		if err := db.Preload("Items").Order("id desc").Offset(offset).Limit(pageSize).Find(&orders).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch orders")
			return
		}
		totalPages := (int(total) + pageSize - 1) / pageSize // Calculate total pages
		c.HTML(http.StatusOK, "admin_orders.html", gin.H{
			"orders":      orders,                   // All orders, current page
			"page":        page,                     // Current page
			"page_size":   pageSize,                 // Page size
			"total":       total,                    // Total number of orders
			"total_pages": totalPages,               // Total pages
			"username":    c.GetString("username"),  // Authenticated admin
			"flash":       flash.Take(c),
		})
	}
}
