package utils

import (
	"fmt"
	"time"

	"github.com/aromabeans/coffee-feedback/models"
	"github.com/xuri/excelize/v2"
)

var reportHeader = []string{
	"Timestamp", "Type", "Category", "Product", "Content",
	"Sentiment", "Emotion", "Rating", "Suggestion",
}

// BuildFeedbackWorkbook renders all feedback into an xlsx workbook for the
// dashboard export.
func BuildFeedbackWorkbook(feedbacks []models.Feedback) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, fb := range feedbacks {
		rating := ""
		if fb.Type == models.TypeEmotion {
			rating = fmt.Sprintf("%d", fb.Rating)
		}
		values := []interface{}{
			fb.Timestamp.Format(time.RFC3339),
			fb.Type,
			fb.Category,
			fb.Product,
			fb.Content,
			fb.Sentiment,
			fb.Emotion,
			rating,
			fb.Suggestion,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}
