package catalog

import "toolkit/internal/models"

var defaultTools = []models.Tool{
	{ID: "word-counter", Name: "Word Counter", Description: "Count words, characters and sentences in any text", Category: "Text", Icon: "type", Route: "/tools/word-counter", Popular: true},
	{ID: "case-converter", Name: "Case Converter", Description: "Convert text between upper, lower, title and camel case", Category: "Text", Icon: "letter-case", Route: "/tools/case-converter", Popular: false},
	{ID: "lorem-ipsum", Name: "Lorem Ipsum Generator", Description: "Generate placeholder text by words or paragraphs", Category: "Text", Icon: "text", Route: "/tools/lorem-ipsum", Popular: false},
	{ID: "readability-score", Name: "Readability Score", Description: "Score text readability with Flesch reading ease", Category: "Text", Icon: "book-open", Route: "/tools/readability-score", Popular: false},
	{ID: "base64", Name: "Base64 Encoder/Decoder", Description: "Encode and decode Base64 strings", Category: "Converters", Icon: "binary", Route: "/tools/base64", Popular: true},
	{ID: "url-encoder", Name: "URL Encoder/Decoder", Description: "Percent-encode and decode URLs and query strings", Category: "Converters", Icon: "link", Route: "/tools/url-encoder", Popular: false},
	{ID: "json-formatter", Name: "JSON Formatter", Description: "Pretty-print, minify and validate JSON", Category: "Converters", Icon: "braces", Route: "/tools/json-formatter", Popular: true},
	{ID: "color-converter", Name: "Color Converter", Description: "Convert colors between HEX, RGB and HSL", Category: "Converters", Icon: "palette", Route: "/tools/color-converter", Popular: false},
	{ID: "age-calculator", Name: "Age Calculator", Description: "Calculate exact age from a date of birth", Category: "Calculators", Icon: "calendar", Route: "/tools/age-calculator", Popular: true},
	{ID: "emi-calculator", Name: "EMI Calculator", Description: "Calculate monthly loan installments and total interest", Category: "Calculators", Icon: "calculator", Route: "/tools/emi-calculator", Popular: false},
	{ID: "percentage-calculator", Name: "Percentage Calculator", Description: "Work out percentages, increases and discounts", Category: "Calculators", Icon: "percent", Route: "/tools/percentage-calculator", Popular: false},
	{ID: "bmi-calculator", Name: "BMI Calculator", Description: "Calculate body mass index from height and weight", Category: "Calculators", Icon: "activity", Route: "/tools/bmi-calculator", Popular: false},
	{ID: "password-generator", Name: "Password Generator", Description: "Generate strong random passwords with custom charsets", Category: "Generators", Icon: "key", Route: "/tools/password-generator", Popular: true},
	{ID: "uuid-generator", Name: "UUID Generator", Description: "Generate random v4 UUIDs in bulk", Category: "Generators", Icon: "hash", Route: "/tools/uuid-generator", Popular: false},
	{ID: "qr-generator", Name: "QR Code Generator", Description: "Turn links and text into scannable QR codes", Category: "Generators", Icon: "qr-code", Route: "/tools/qr-generator", Popular: true},
	{ID: "slug-generator", Name: "Slug Generator", Description: "Turn titles into clean URL slugs", Category: "Generators", Icon: "minus", Route: "/tools/slug-generator", Popular: false},
	{ID: "meta-tag-generator", Name: "Meta Tag Generator", Description: "Generate HTML meta tags for titles and descriptions", Category: "SEO", Icon: "tag", Route: "/tools/meta-tag-generator", Popular: true},
	{ID: "og-tag-generator", Name: "Open Graph Generator", Description: "Generate Open Graph tags for social link previews", Category: "SEO", Icon: "share-2", Route: "/tools/og-tag-generator", Popular: false},
	{ID: "robots-txt-generator", Name: "Robots.txt Generator", Description: "Build robots.txt rules for crawlers", Category: "SEO", Icon: "bot", Route: "/tools/robots-txt-generator", Popular: false},
	{ID: "markdown-preview", Name: "Markdown Preview", Description: "Write markdown and preview the rendered HTML", Category: "Text", Icon: "file-text", Route: "/tools/markdown-preview", Popular: false},
}
