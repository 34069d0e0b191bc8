// Package render turns a canonical record into the Markdown document handed
// to the document-understanding assistant, and derives a filesystem-safe name
// for it. Rendering is deterministic and total: even a near-empty record
// produces a titled document with the fixed footer.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kshoda-lgtm/8CUBE-promotion/internal/record"
)

// Markdown renders the record as a sectioned document. Sections appear in
// one fixed canonical order and are emitted only when their underlying
// fields are non-empty.
func Markdown(r *record.Record) string {
	var lines []string

	title := r.ProjectName
	if title == "" {
		client := r.ClientName
		if client == "" {
			client = "不明"
		}
		title = fmt.Sprintf("【%s様】案件", client)
	}
	lines = append(lines, fmt.Sprintf("# %s\n", title))

	lines = append(lines, fmt.Sprintf("**登録日時**: %s", record.FormatDateTime(r.RegisteredAt)))
	lines = append(lines, fmt.Sprintf("**担当者**: %s", ownerOrUnknown(r)))
	lines = append(lines, fmt.Sprintf("**データソース**: %s\n", dataSource(r)))
	lines = append(lines, "---\n")

	if r.ClientName != "" || r.EventDate != "" || r.EventType != "" || r.Venue != "" || r.TargetCount != "" {
		lines = append(lines, "## 📋 基本情報\n")
		if r.ClientName != "" {
			lines = append(lines, fmt.Sprintf("- **クライアント名**: %s", r.ClientName))
		}
		if r.EventDate != "" {
			lines = append(lines, fmt.Sprintf("- **実施時期**: %s", r.EventDate))
		}
		if r.EventType != "" {
			lines = append(lines, fmt.Sprintf("- **イベント種別**: %s", r.EventType))
		}
		if r.Venue != "" {
			lines = append(lines, fmt.Sprintf("- **会場**: %s", r.Venue))
		}
		if r.TargetCount != "" {
			lines = append(lines, fmt.Sprintf("- **ターゲット人数**: %s", r.TargetCount))
		}
		lines = append(lines, "")
	}

	if r.EventDescription != "" {
		lines = append(lines, "## 📝 イベント内容\n")
		lines = append(lines, r.EventDescription+"\n")
	}

	if r.UnitPrice != nil || r.TotalCost != nil || r.OrderQuantity != nil {
		lines = append(lines, "## 💰 価格情報\n")
		if r.UnitPrice != nil {
			lines = append(lines, fmt.Sprintf("- **単価**: ¥%s", groupDigits(*r.UnitPrice)))
		}
		if r.TotalCost != nil {
			lines = append(lines, fmt.Sprintf("- **総費用**: ¥%s", groupDigits(*r.TotalCost)))
		}
		if r.OrderQuantity != nil {
			lines = append(lines, fmt.Sprintf("- **発注数量**: %s個", groupDigits(*r.OrderQuantity)))
		}
		lines = append(lines, "")
	}

	if r.Deadline != "" {
		lines = append(lines, "## ⏰ 納期\n")
		lines = append(lines, fmt.Sprintf("- **納期**: %s\n", r.Deadline))
	}

	if len(r.PartnerCompanies) > 0 {
		lines = append(lines, "## 🤝 協力会社\n")
		for _, c := range r.PartnerCompanies {
			if c = strings.TrimSpace(c); c != "" {
				lines = append(lines, "- "+c)
			}
		}
		lines = append(lines, "")
		if r.PartnerEvaluation != "" {
			lines = append(lines, fmt.Sprintf("**評価**: %s\n", r.PartnerEvaluation))
		}
	}

	if len(r.NoveltyItems) > 0 {
		lines = append(lines, "## 🎁 ノベルティ/景品\n")
		for _, n := range r.NoveltyItems {
			if n = strings.TrimSpace(n); n != "" {
				lines = append(lines, "- "+n)
			}
		}
		lines = append(lines, "")
	}

	if r.SuccessFactors != "" {
		lines = append(lines, "## ✅ 成功要因\n")
		lines = append(lines, r.SuccessFactors+"\n")
	}

	if r.FailurePoints != "" {
		lines = append(lines, "## ⚠️ 反省点\n")
		lines = append(lines, r.FailurePoints+"\n")
	}

	if len(r.Tags) > 0 {
		lines = append(lines, "## 🏷️ タグ・キーワード\n")
		tokens := make([]string, 0, len(r.Tags))
		for _, t := range r.Tags {
			if t = strings.TrimSpace(t); t != "" {
				tokens = append(tokens, fmt.Sprintf("`#%s`", t))
			}
		}
		lines = append(lines, strings.Join(tokens, " ")+"\n")
	}

	if r.DocumentURL != "" {
		lines = append(lines, "## 📎 参考資料\n")
		lines = append(lines, fmt.Sprintf("- [企画書・資料リンク](%s)\n", r.DocumentURL))
	}

	if r.Notes != "" {
		lines = append(lines, "## 📌 備考\n")
		lines = append(lines, r.Notes+"\n")
	}

	lines = append(lines, "---\n")
	lines = append(lines, fmt.Sprintf("*登録者: %s | 登録日: %s*", owner(r), record.FormatDateTime(r.RegisteredAt)))

	return strings.Join(lines, "\n")
}

var unsafeChars = regexp.MustCompile(`[/\\:*?"<>|]`)

// FileName derives the document file name: short date, optional bracketed
// client, then project name, event type, or a generic label. Path-unsafe
// characters become underscores.
func FileName(r *record.Record) string {
	client := ""
	if r.ClientName != "" {
		client = fmt.Sprintf("【%s様】", r.ClientName)
	}
	project := r.ProjectName
	if project == "" {
		project = r.EventType
	}
	if project == "" {
		project = "プロモーション案件"
	}
	name := fmt.Sprintf("%s_%s%s", record.FormatDateShort(r.RegisteredAt), client, project)
	return unsafeChars.ReplaceAllString(name, "_") + ".md"
}

func owner(r *record.Record) string {
	if r.PersonInCharge != "" {
		return r.PersonInCharge
	}
	return r.RespondentEmail
}

func ownerOrUnknown(r *record.Record) string {
	if o := owner(r); o != "" {
		return o
	}
	return "不明"
}

func dataSource(r *record.Record) string {
	if r.SourceFileName != "" {
		return "スライド自動抽出"
	}
	return "Google Form（手入力）"
}

// groupDigits renders n with thousands separators ("1500" -> "1,500").
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
