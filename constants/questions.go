package constants

// Form question titles, exactly as they appear on the registration form.
// The normalizer keys its label table off these strings; unknown labels are
// ignored so the form can add questions without breaking older code.
const (
	QProjectName       = "案件名"
	QClientName        = "クライアント名"
	QPersonInCharge    = "担当者名"
	QEventDate         = "実施時期"
	QEventType         = "イベント種別"
	QEventDescription  = "イベント内容（概要）"
	QVenue             = "会場名"
	QTargetCount       = "ターゲット人数"
	QUnitPrice         = "単価（円）"
	QTotalCost         = "総費用（円）"
	QOrderQuantity     = "発注数量"
	QPartnerCompanies  = "協力会社名"
	QPartnerEvaluation = "協力会社の評価"
	QNoveltyItems      = "ノベルティ/景品の種類"
	QDeadline          = "納期"
	QSuccessFactors    = "成功要因・うまくいった点"
	QFailurePoints     = "失敗・反省点"
	QDocumentURL       = "企画書・資料のURL"
	QTags              = "タグ・キーワード"
	QNotes             = "備考・補足情報"
)
