package usecase

import "strings"

// Foydalanuvchiga ko'rinadigan matnlar (Telegram Markdown)
const (
	MsgQueryTooShort = "🔍 Please enter at least %d characters to search."
	MsgSearching     = "🔎 Searching suppliers for: *%s*"
	MsgNoValidNames  = "❌ No valid product names found. Please try again."
	MsgNoProducts    = "❌ No products found. Try different search terms."

	MsgSearchStatus = "📊 *Search results:*\n" +
		"• Found: %d product(s)\n" +
		"• Not found: %d product(s)\n\n" +
		"Analyzing international suppliers...\n" +
		"This may take a moment ⏳"
	MsgNotFoundList = "\n❌ Not found: %s"

	MsgGeneratingReport = "📊 Generating Excel report..."
	MsgAnalyzing        = "🤖 Analyzing suppliers with AI..."

	MsgResultsHeader = "📈 *SUPPLIER ANALYSIS RESULTS*\n────────────────────────────"
	MsgPreparingFile = "📊 *Preparing the detailed Excel report...*"

	ReportFileName = "supplier_analysis.xlsx"
	ReportCaption  = "📈 Full supplier analysis report"

	MsgAnalysisComplete = "✅ *Analysis complete!*\n\n" +
		"*Next steps:*\n" +
		"1. Review the Excel report for detailed pricing\n" +
		"2. Contact the top 3 suppliers from the analysis\n" +
		"3. Request samples before placing a bulk order\n" +
		"4. Negotiate better terms based on the data\n\n" +
		"*Need more products analyzed?*\n" +
		"Just send the product names!"

	MsgProcessingError = "❌ Error processing your request. Please try again later."

	// AnalysisUnavailable model javob bermaganda tahlil o'rniga
	AnalysisUnavailable = "Could not generate the analysis at the moment."
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown foydalanuvchi matnini Telegram Markdown ichiga qo'yish uchun
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
