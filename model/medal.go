package model

type RequirementKind string

const (
	RequirementTasks  RequirementKind = "tasks"
	RequirementStreak RequirementKind = "streak"
)

type MedalRequirement struct {
	Kind      RequirementKind `json:"kind"`
	Threshold int             `json:"threshold"`
}

// Medal is a cosmetic achievement unlocked when a stat crosses a fixed threshold.
type Medal struct {
	Icon        string           `json:"icon"`
	Label       string           `json:"label"`
	Color       string           `json:"color"`
	Requirement MedalRequirement `json:"requirement"`
}

// Medals is the fixed achievement table. Order defines both display order and
// the "next medal" search order.
var Medals = []Medal{
	{Icon: "rocket_launch", Label: "Zero Inertia", Color: "#13ec5b", Requirement: MedalRequirement{Kind: RequirementTasks, Threshold: 1}},
	{Icon: "ac_unit", Label: "Ice Breaker", Color: "#60a5fa", Requirement: MedalRequirement{Kind: RequirementStreak, Threshold: 2}},
	{Icon: "shield", Label: "Steel Focus", Color: "#fbbf24", Requirement: MedalRequirement{Kind: RequirementTasks, Threshold: 5}},
	{Icon: "electric_bolt", Label: "Impulse", Color: "#a78bfa", Requirement: MedalRequirement{Kind: RequirementStreak, Threshold: 5}},
	{Icon: "speed", Label: "Velocity", Color: "#fb7185", Requirement: MedalRequirement{Kind: RequirementTasks, Threshold: 15}},
	{Icon: "auto_awesome", Label: "Alchemist", Color: "#00f2ff", Requirement: MedalRequirement{Kind: RequirementStreak, Threshold: 7}},
	{Icon: "wb_sunny", Label: "Early Bird", Color: "#f59e0b", Requirement: MedalRequirement{Kind: RequirementTasks, Threshold: 30}},
	{Icon: "diamond", Label: "Unbreakable", Color: "#f472b6", Requirement: MedalRequirement{Kind: RequirementStreak, Threshold: 15}},
	{Icon: "landscape", Label: "Pioneer", Color: "#2dd4bf", Requirement: MedalRequirement{Kind: RequirementTasks, Threshold: 50}},
}
