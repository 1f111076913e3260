package chat

import "testing"

func TestLabelBijection(t *testing.T) {
	seen := make(map[string]AgentType)
	for _, a := range AllAgents() {
		label := a.Label()
		if label == "" {
			t.Errorf("agent %v has empty label", a)
		}
		if prev, dup := seen[label]; dup {
			t.Errorf("label %q used by both %v and %v", label, prev, a)
		}
		seen[label] = a

		got, ok := AgentFromLabel(label)
		if !ok || got != a {
			t.Errorf("AgentFromLabel(%q) = %v, %v; want %v, true", label, got, ok, a)
		}
	}
}

func TestIsValidLabel(t *testing.T) {
	if !IsValidLabel("Manajer Informasi Pasien") {
		t.Error("expected the patient manager label to be valid")
	}
	if IsValidLabel("Agen Palsu") {
		t.Error("out-of-set label must not validate")
	}
	if IsValidLabel("") {
		t.Error("empty label must not validate")
	}
}

func TestRoutingRulesCoverSpecialists(t *testing.T) {
	byAgent := make(map[AgentType]RoutingRule)
	for _, rule := range RoutingRules() {
		if rule.Trigger == "" || rule.Behavior == "" {
			t.Errorf("rule for %s missing trigger or behavior", rule.Agent.Label())
		}
		byAgent[rule.Agent] = rule
	}

	specialists := []AgentType{AgentPatientManager, AgentMedicalAssistant, AgentDocCreator, AgentAdminHandler}
	for _, a := range specialists {
		if _, ok := byAgent[a]; !ok {
			t.Errorf("no routing rule for specialist %s", a.Label())
		}
	}

	// Default and fallback personas are not routed to by rule.
	if _, ok := byAgent[AgentCoordinator]; ok {
		t.Error("coordinator must not carry a routing rule")
	}
	if _, ok := byAgent[AgentUnknown]; ok {
		t.Error("fallback persona must not carry a routing rule")
	}
}

func TestReturnedTablesAreCopies(t *testing.T) {
	agents := AllAgents()
	agents[0] = AgentUnknown
	if AllAgents()[0] != AgentCoordinator {
		t.Error("AllAgents must return a copy")
	}

	rules := RoutingRules()
	rules[0].Trigger = "mutated"
	if RoutingRules()[0].Trigger == "mutated" {
		t.Error("RoutingRules must return a copy")
	}
}
