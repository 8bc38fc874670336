package telegram

import (
	"fmt"
	"strings"

	"github.com/yourusername/supplier-research-bot/internal/domain/entity"
)

const welcomeMessage = `📊 *Supplier Market Research Bot*

I help you analyze suppliers of products for e-commerce.

*How it works:*
1. Send me product names (comma separated)
2. I compare 10 international suppliers for each product
3. You get a detailed Excel report with pricing
4. Plus AI recommendations on the suppliers

*Examples:*
` + "`wireless earbuds, smart watch, yoga mat`" + `
` + "`phone case, power bank, led desk lamp`" + `
` + "`backpack, water bottle, fitness tracker`" + `

*What I analyze:*
• Prices from different countries
• Lead times and MOQ
• Supplier ratings and reliability
• Full landed cost breakdown
• Risk assessment

*Send product names to get started!*`

const helpMessageTemplate = `📋 *Using the Market Research Bot*

*Commands:*
/start - Welcome message and instructions
/help - This help message
/examples - Products you can search for

*How to search:*
• Send product names separated by commas
• Use common product names
• Be specific when needed
• Up to %d products per request

*Search examples:*
• ` + "`wireless earbuds, smart watch`" + `
• ` + "`yoga mat, fitness tracker`" + `
• ` + "`bluetooth speaker, portable power bank`" + `

*What you get:*
1. *Excel report* with the detailed supplier analysis
2. *AI analysis* of the best suppliers
3. *Price comparison* across countries
4. *Risk assessment* for every supplier
5. *Negotiation tips*

Just send product names and I will do the research!`

const unknownCommandMessage = "Unknown command. Send /help for instructions."

func helpMessage(maxProducts int) string {
	return fmt.Sprintf(helpMessageTemplate, maxProducts)
}

// examplesMessage katalog mahsulotlari kategoriyalar bo'yicha
func examplesMessage(products []entity.Product) string {
	var categories []string
	byCategory := make(map[string][]string)
	for _, p := range products {
		if _, ok := byCategory[p.Category]; !ok {
			categories = append(categories, p.Category)
		}
		byCategory[p.Category] = append(byCategory[p.Category], p.Name)
	}

	var sb strings.Builder
	sb.WriteString("🎯 *Products you can analyze:*\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "\n*%s:*\n", c)
		for _, name := range byCategory[c] {
			fmt.Fprintf(&sb, "• %s\n", name)
		}
	}
	sb.WriteString("\n*Copy any of them to start the analysis!*")
	return sb.String()
}
