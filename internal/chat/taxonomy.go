package chat

// RoutingRule ties a specialist persona to the request topics it handles
// and the behavior it must follow. Rules are static configuration; they are
// compiled once into the session directive and never change at runtime.
type RoutingRule struct {
	Agent    AgentType
	Trigger  string // topics/intents that route a request to this persona
	Behavior string // tone and content constraints for its answers
	Caveat   string // privacy rule or disclaimer appended to the behavior, optional
}

// allAgents lists the closed category set in directive order. The
// coordinator comes first as the default persona and AgentUnknown last as
// the fallback for unparseable output.
var allAgents = []AgentType{
	AgentCoordinator,
	AgentPatientManager,
	AgentMedicalAssistant,
	AgentDocCreator,
	AgentAdminHandler,
	AgentUnknown,
}

// routingRules holds the specialist personas the coordinator delegates to.
// The coordinator and AgentUnknown carry no rule: the former is the default
// answerer, the latter exists only as a parser fallback.
var routingRules = []RoutingRule{
	{
		Agent:    AgentPatientManager,
		Trigger:  "Pertanyaan tentang pendaftaran, janji temu, detail pasien, biaya (billing), asuransi (BPJS).",
		Behavior: "Konfirmasi detail janji temu (tanggal, waktu, dokter). Jawab pertanyaan billing dengan ringkas.",
		Caveat:   "PRIVASI: DILARANG KERAS mengungkapkan PII (Personally Identifiable Information) nyata. Jika diminta data spesifik pasien, jawablah dengan data simulasi/placeholder yang disamarkan (misal: \"Pasien A\", \"No. RM XXX-123\") dan ingatkan tentang protokol privasi.",
	},
	{
		Agent:    AgentMedicalAssistant,
		Trigger:  "Diagnosis, gejala, pertanyaan obat, dukungan klinis, penelitian medis.",
		Behavior: "Berikan informasi medis umum. Gunakan pengetahuan umum untuk menjelaskan obat/gejala.",
		Caveat:   "Disclaimer: Selalu ingatkan bahwa jawaban ini adalah informasi pendukung, bukan pengganti konsultasi dokter profesional.",
	},
	{
		Agent:    AgentDocCreator,
		Trigger:  "Pembuatan surat sakit, laporan medis, formulir klaim, laporan keuangan sederhana.",
		Behavior: "Buat draft dokumen yang diminta dalam format Markdown yang rapi.",
	},
	{
		Agent:    AgentAdminHandler,
		Trigger:  "Kebijakan operasional, jam berkunjung, inventaris, fasilitas umum rumah sakit.",
		Behavior: "Jelaskan kebijakan RS atau status fasilitas.",
	},
}

// agentsByLabel is the label→category side of the bijection.
var agentsByLabel = func() map[string]AgentType {
	m := make(map[string]AgentType, len(allAgents))
	for _, a := range allAgents {
		m[a.Label()] = a
	}
	return m
}()

// AllAgents returns the closed category set in directive order.
func AllAgents() []AgentType {
	out := make([]AgentType, len(allAgents))
	copy(out, allAgents)
	return out
}

// RoutingRules returns the static specialist routing table.
func RoutingRules() []RoutingRule {
	out := make([]RoutingRule, len(routingRules))
	copy(out, routingRules)
	return out
}

// AgentFromLabel resolves a wire-tag label to its category.
func AgentFromLabel(label string) (AgentType, bool) {
	a, ok := agentsByLabel[label]
	return a, ok
}

// IsValidLabel reports whether label belongs to the closed category set.
func IsValidLabel(label string) bool {
	_, ok := agentsByLabel[label]
	return ok
}
