package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"saldo/models"
	"saldo/money"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportSheetName 导出工作表名称
const ExportSheetName = "Expenses"

var exportHeaders = []string{"ID", "Date", "Description", "Category", "Amount", "Payment Method", "Barcode", "Recurring", "Notes"}

func exportRow(e models.Expense, categories map[uint]string) []string {
	return []string{
		strconv.FormatUint(uint64(e.ID), 10),
		e.Date.String(),
		e.Description,
		categories[e.CategoryID],
		money.Format(e.Amount),
		e.PaymentMethod,
		e.Barcode,
		strconv.FormatBool(e.Recurring),
		e.Notes,
	}
}

// WriteExpensesCSV 将消费记录写为 CSV（带 UTF-8 BOM，便于 Excel 打开）
func WriteExpensesCSV(w io.Writer, expenses []models.Expense, categories map[uint]string) error {
	if _, err := io.WriteString(w, "\xEF\xBB\xBF"); err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(exportHeaders); err != nil {
		return err
	}
	for _, e := range expenses {
		if err := writer.Write(exportRow(e, categories)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// BuildExpensesWorkbook 生成 xlsx 工作簿，末行为合计，调用方负责 Close
func BuildExpensesWorkbook(expenses []models.Expense, categories map[uint]string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", ExportSheetName)

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0F766E"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Border: border,
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	_ = f.SetColWidth(ExportSheetName, "A", "B", 12)
	_ = f.SetColWidth(ExportSheetName, "C", "D", 28)
	_ = f.SetColWidth(ExportSheetName, "E", "H", 15)
	_ = f.SetColWidth(ExportSheetName, "I", "I", 40)

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(ExportSheetName, cell, header)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	_ = f.SetCellStyle(ExportSheetName, "A1", lastCol+"1", headerStyle)

	total := decimal.Zero
	for i, e := range expenses {
		row := i + 2
		amount, _ := e.Amount.Float64()
		values := []interface{}{
			e.ID, e.Date.String(), e.Description, categories[e.CategoryID],
			amount, e.PaymentMethod, e.Barcode, e.Recurring, e.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(ExportSheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
		total = total.Add(e.Amount)
	}

	summaryRow := len(expenses) + 2
	sum, _ := money.RoundAmount(total).Float64()
	_ = f.SetCellValue(ExportSheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	_ = f.SetCellValue(ExportSheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(expenses)))
	_ = f.SetCellValue(ExportSheetName, fmt.Sprintf("E%d", summaryRow), sum)
	_ = f.SetCellStyle(ExportSheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("%s%d", lastCol, summaryRow), summaryStyle)

	return f, nil
}
