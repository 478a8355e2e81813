package utils

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonBlockRe = regexp.MustCompile("(?s)```json\\s*([\\s\\S]*?)\\s*```")
	anyBlockRe  = regexp.MustCompile("(?s)```\\s*([\\s\\S]*?)\\s*```")
)

// IsValidJSON проверяет, парсится ли строка как JSON.
func IsValidJSON(s string) bool {
	var js json.RawMessage
	return json.Unmarshal([]byte(s), &js) == nil
}

// ExtractJSONContent достает JSON из сырого ответа AI модели.
// Модели любят заворачивать JSON в markdown-блоки или добавлять
// пояснительный текст вокруг.
func ExtractJSONContent(rawText string) string {
	rawText = strings.TrimSpace(rawText)

	// 1. Блок ```json ... ```
	if matches := jsonBlockRe.FindStringSubmatch(rawText); len(matches) > 1 {
		if result := processPotentialJSON(matches[1]); result != "" {
			return result
		}
	}

	// 2. Любой блок ``` ... ```
	if matches := anyBlockRe.FindStringSubmatch(rawText); len(matches) > 1 {
		if result := processPotentialJSON(matches[1]); result != "" {
			return result
		}
	}

	// 3. Между первой {/[ и последней }/]
	firstBrace := strings.Index(rawText, "{")
	lastBrace := strings.LastIndex(rawText, "}")
	firstBracket := strings.Index(rawText, "[")
	lastBracket := strings.LastIndex(rawText, "]")

	startIdx, endIdx := -1, -1
	if firstBrace != -1 && (firstBracket == -1 || firstBrace < firstBracket) {
		startIdx, endIdx = firstBrace, lastBrace
	} else if firstBracket != -1 {
		startIdx, endIdx = firstBracket, lastBracket
	}

	if startIdx != -1 {
		var potential string
		if endIdx > startIdx {
			potential = rawText[startIdx : endIdx+1]
		} else {
			potential = rawText[startIdx:]
		}
		if result := processPotentialJSON(potential); result != "" {
			return result
		}
	}

	// 4. Ничего не помогло - возвращаем обрезанное как есть
	if firstBrace != -1 {
		return strings.TrimSpace(rawText[firstBrace:])
	}
	if firstBracket != -1 {
		return strings.TrimSpace(rawText[firstBracket:])
	}
	return rawText
}

// processPotentialJSON валидирует кандидата, при необходимости
// добивая незакрытые скобки.
func processPotentialJSON(candidate string) string {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return ""
	}
	if IsValidJSON(candidate) {
		return candidate
	}
	balanced := balanceBrackets(candidate)
	if IsValidJSON(balanced) {
		return balanced
	}
	return ""
}

// balanceBrackets добавляет недостающие закрывающие скобки в конец
// обрезанного JSON. Скобки внутри строковых литералов не считаются.
func balanceBrackets(text string) string {
	balanceCurly := 0
	balanceSquare := 0
	inString := false
	escape := false

	for _, r := range text {
		if escape {
			escape = false
			continue
		}
		if r == '\\' {
			escape = true
			continue
		}
		if r == '"' {
			inString = !inString
		}
		if !inString {
			switch r {
			case '{':
				balanceCurly++
			case '}':
				balanceCurly--
			case '[':
				balanceSquare++
			case ']':
				balanceSquare--
			}
		}
	}

	balanced := text
	trimmed := strings.TrimSpace(text)

	if strings.HasPrefix(trimmed, "{") {
		for balanceSquare > 0 {
			balanced += "]"
			balanceSquare--
		}
		for balanceCurly > 0 {
			balanced += "}"
			balanceCurly--
		}
	} else if strings.HasPrefix(trimmed, "[") {
		for balanceCurly > 0 {
			balanced += "}"
			balanceCurly--
		}
		for balanceSquare > 0 {
			balanced += "]"
			balanceSquare--
		}
	}

	return balanced
}
