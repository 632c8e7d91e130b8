package butler

import (
	"fmt"
	"strings"
)

func buildReplyPrompt(summary, memories, enrichment, text string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "你是一位專業管家。當前認知：%s\n記憶：%s", summary, memories)
	if enrichment != "" {
		sb.WriteString("\n")
		sb.WriteString(enrichment)
	}
	fmt.Fprintf(&sb, "\n\n主人說：%s", text)
	return sb.String()
}

func buildReflectionPrompt(text, oldSummary string) string {
	return fmt.Sprintf("分析此對話並更新描述：%s。目前認知：%s", text, oldSummary)
}
