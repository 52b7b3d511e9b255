// ABOUTME: The built-in six-week peek-a-boo boxing program.
// ABOUTME: program[week-1][day-1] holds the plan for that session.
package catalog

var program = [Weeks][DaysPerWeek]Entry{
	{ // Week 1
		{
			Focus:        "Rhythm & Form",
			Duration:     "60-75 minutes",
			Description:  "Introduction to peek-a-boo stance, basic head movement, and rhythm development",
			Warmup:       []string{"Jump rope - 3 rounds of 2 minutes", "Arm circles - 2 sets of 20", "Shadow footwork - 3 minutes", "Dynamic stretching - 5 minutes"},
			Technical:    []string{"Peek-a-boo stance hold - 3x1 min", "Slip lines (left/right) - 4 sets of 10", "Double bob & weave - 3 sets of 8", "Guard positioning drills - 5 minutes"},
			Combos:       []string{"Slip Right > Left Hook > Right Uppercut (3x10)", "Bob > Double Jab > Right Hand (3x10)", "Weave Left > Right Hook to Body (3x10)"},
			Bagwork:      []string{"4 rounds of 2 minutes - Focus on form", "Emphasis on tight defense between punches", "Practice peek-a-boo head position"},
			Conditioning: []string{"Jump squats - 3 sets of 15", "Plank punches - 3 sets of 20", "Russian twists - 3 sets of 30"},
			Recovery:     []string{"Deep breathing - 5 minutes", "Static stretching - 10 minutes", "Foam rolling - 5 minutes"},
		},
		{
			Focus:        "Head Movement Fundamentals",
			Duration:     "60-75 minutes",
			Description:  "Building defensive reflexes and slip-counter combinations",
			Warmup:       []string{"Jump rope - 3 rounds of 2 minutes", "Neck rotations - 20 each direction", "Shadow boxing - 3 minutes", "Hip openers - 5 minutes"},
			Technical:    []string{"Slip-slip-roll drill - 5 sets of 8", "Figure-8 head movement - 3 sets of 10", "Partner slip practice (or solo) - 4x2 min", "Defensive stance flow - 5 minutes"},
			Combos:       []string{"Slip > Hook to Body > Hook to Head (4x8)", "Roll Under > Right Uppercut > Left Hook (4x8)", "Double Slip > Right Hand > Left Hook (4x8)"},
			Bagwork:      []string{"5 rounds of 2 minutes - Head movement emphasis", "Move after every combination", "Keep hands high in peek-a-boo position"},
			Conditioning: []string{"Mountain climbers - 3 sets of 30", "Medicine ball slams - 3 sets of 15", "Bicycle crunches - 3 sets of 30"},
			Recovery:     []string{"Cool down walk - 3 minutes", "Shoulder stretches - 5 minutes", "Meditation/breathing - 5 minutes"},
		},
		{
			Focus:        "Power Generation from Low Position",
			Duration:     "70-80 minutes",
			Description:  "Developing explosive power from the crouch and generating force through legs",
			Warmup:       []string{"Jump rope - 4 rounds of 2 minutes", "Squat pulses - 2 sets of 20", "Shadow boxing with emphasis on squat - 4 minutes", "Leg swings - 2 sets of 15 each"},
			Technical:    []string{"Crouch to explosion drill - 5 sets of 5", "Level change practice - 4 sets of 10", "Spring-loaded stance drills - 4x2 min", "Weight transfer exercises - 5 minutes"},
			Combos:       []string{"Crouch > Spring Up > Left Hook (4x10)", "Level Change > Double Uppercut (4x10)", "Bob > Explode > Right Hand > Left Hook (4x10)"},
			Bagwork:      []string{"6 rounds of 2 minutes - Power focus", "Every punch from compressed position", "Feel the leg drive in every shot"},
			Conditioning: []string{"Box jumps - 4 sets of 12", "Explosive push-ups - 4 sets of 10", "Burpees - 3 sets of 15"},
			Recovery:     []string{"Light stretching - 10 minutes", "Ice problem areas - 10 minutes", "Protein intake within 30 minutes"},
		},
		{
			Focus:        "Combination Flow & Rhythm",
			Duration:     "65-75 minutes",
			Description:  "Linking defensive movements with offensive combinations seamlessly",
			Warmup:       []string{"Jump rope with footwork patterns - 4x2 min", "Shadow flow sequences - 5 minutes", "Dynamic stretches - 5 minutes"},
			Technical:    []string{"4-punch combinations from defense - 5 sets", "Flow drills: Slip-Hook-Slip-Hook - 4x2 min", "Rhythm shadowboxing - 3 rounds of 3 minutes"},
			Combos:       []string{"Slip > Jab > Cross > Hook > Uppercut (5x6)", "Roll > Hook Body > Hook Head > Cross (5x6)", "Weave > Uppercut > Hook > Cross (5x6)"},
			Bagwork:      []string{"5 rounds of 3 minutes - Flowing combinations", "Focus on rhythm over power", "No pause between defensive and offensive moves"},
			Conditioning: []string{"Jump rope intervals - 5x1 min high intensity", "Core rotation exercises - 4 sets of 20", "Shadowboxing sprints - 3x1 min all-out"},
			Recovery:     []string{"Cool down shadowboxing - 3 minutes", "Full body stretch - 12 minutes"},
		},
		{
			Focus:        "Sparring Simulation & Pressure",
			Duration:     "75-85 minutes",
			Description:  "Testing skills under pressure with continuous movement and combinations",
			Warmup:       []string{"Extended jump rope - 5x2 min", "Full shadow round with all techniques - 3x3 min", "Dynamic warm-up - 8 minutes"},
			Technical:    []string{"Pressure drill - advancing with defense - 4x2 min", "Counter-punching sequences - 5 sets of 8", "Distance management - 3x3 min"},
			Combos:       []string{"Free-flowing combinations - Work all week's combos", "Defensive then offensive sequences", "Pressure fighting - constant movement"},
			Bagwork:      []string{"8 rounds of 2 minutes - Simulated sparring", "Mix power, speed, and defense", "Constant movement and angles"},
			Conditioning: []string{"Heavy bag power punches - 3 sets of 30 seconds all-out", "Sprawl and box drill - 4 sets of 10", "Core finisher circuit - 8 minutes"},
			Recovery:     []string{"Extensive stretching - 15 minutes", "Ice bath or contrast shower - 10 minutes", "Rest and nutrition planning"},
		},
	},
	{ // Week 2
		{
			Focus:        "Speed & Snap Development",
			Duration:     "65-75 minutes",
			Description:  "Developing hand speed and snap while maintaining defensive posture",
			Warmup:       []string{"Speed rope - 4x2 min", "Wrist rotations - 2 sets of 30", "Fast shadowboxing - 4 minutes", "Arm loosening exercises - 5 minutes"},
			Technical:    []string{"Speed jab drills - 5 sets of 20", "Fast hand combinations - 4x30 seconds", "Snap-back technique practice - 5 minutes", "Hand speed ladder drills - 4 sets"},
			Combos:       []string{"Triple Jab > Cross (5x10)", "Speed: Hook-Hook-Uppercut (5x10)", "Fast: Jab-Cross-Hook-Cross (5x10)"},
			Bagwork:      []string{"6 rounds of 2 minutes - Speed focus", "Light gloves if available", "Focus on snap, not power"},
			Conditioning: []string{"Speed bag - 4x2 min (or substitute with fast punching)", "Shoulder burnout - 3 sets to failure", "Fast feet drills - 4x30 seconds"},
			Recovery:     []string{"Arm cooldown swings - 5 minutes", "Shoulder stretches - 8 minutes", "Deep breathing - 5 minutes"},
		},
		{
			Focus:        "Advanced Head Movement",
			Duration:     "70-80 minutes",
			Description:  "Complex defensive patterns and creating angles",
			Warmup:       []string{"Jump rope - 4x2 min", "Neck strengthening - 3 sets of 15", "Shadow defense - 5 minutes", "Full body mobility - 8 minutes"},
			Technical:    []string{"Advanced slip sequences - 5 sets of 12", "Circular head movement - 4x2 min", "Shoulder roll integration - 5 sets of 10", "Matrix-style evasion drills - 4 sets"},
			Combos:       []string{"Slip-Roll-Slip > Uppercut-Hook (4x10)", "Circular movement > Power shots (4x10)", "Pull-counter combinations (4x10)"},
			Bagwork:      []string{"7 rounds of 2 minutes - Maximum head movement", "Every punch preceded by defense", "Create angles before attacking"},
			Conditioning: []string{"Neck bridges - 3 sets of 30 seconds", "Core anti-rotation - 4 sets of 20", "Explosive medicine ball throws - 3 sets of 12"},
			Recovery:     []string{"Neck massage/release - 5 minutes", "Upper body stretching - 10 minutes", "Meditation - 5 minutes"},
		},
		{
			Focus:        "Body Attack Mastery",
			Duration:     "70-80 minutes",
			Description:  "Perfecting body punches and level changes",
			Warmup:       []string{"Jump rope - 4x2 min with squats between rounds", "Deep squat holds - 3x45 seconds", "Shadow body punching - 5 minutes", "Hip mobility - 5 minutes"},
			Technical:    []string{"Body shot mechanics - 5 sets of 10 each hand", "Level change drills - 5 sets of 12", "Dip and rip technique - 4x2 min", "Shovel hook practice - 5 sets of 10"},
			Combos:       []string{"Jab Head > Double Hook Body (5x8)", "Cross > Left Hook Body > Right Uppercut Body (5x8)", "Body-Body-Head combinations (5x8)"},
			Bagwork:      []string{"8 rounds of 2 minutes - 70% body shots", "Punish the body", "Mix levels constantly"},
			Conditioning: []string{"Weighted squat punches - 4 sets of 15", "Woodchoppers - 4 sets of 20", "V-ups - 4 sets of 15"},
			Recovery:     []string{"Lower back stretches - 8 minutes", "Hip flexor release - 5 minutes", "Glute stretches - 5 minutes"},
		},
		{
			Focus:        "Pressure Fighting",
			Duration:     "75-85 minutes",
			Description:  "Constant forward pressure with defense",
			Warmup:       []string{"Aggressive jump rope - 5x2 min", "Shadow pressure fighting - 4x3 min", "Full warm-up circuit - 10 minutes"},
			Technical:    []string{"Walk-down drills - 5x2 min", "Cut-off-the-ring footwork - 4 sets", "Pressure with defense - 5x2 min", "Relentless attack drills - 4 sets"},
			Combos:       []string{"Jab-Cross-Hook stepping in (5x10)", "Bob-Weave advancing with power shots (5x10)", "Non-stop combination pressure (5x10)"},
			Bagwork:      []string{"10 rounds of 2 minutes - Constant pressure", "Never stop moving forward", "Attack, defend, attack pattern"},
			Conditioning: []string{"Prowler push or sled drag - 5 sets of 30m", "Bear crawls - 4 sets of 20m", "Battle ropes - 4x30 seconds"},
			Recovery:     []string{"Active recovery walk - 10 minutes", "Full body stretch - 15 minutes", "Contrast therapy if available"},
		},
		{
			Focus:        "Week 2 Integration",
			Duration:     "80-90 minutes",
			Description:  "Combining all Week 2 skills in high-intensity session",
			Warmup:       []string{"Extended warm-up - 15 minutes", "Shadow review of all techniques - 3x3 min"},
			Technical:    []string{"Review all week's drills - 20 minutes rotating", "Free-form defensive movement - 3x3 min"},
			Combos:       []string{"Mix all week's combinations - 10 minutes continuous", "Student choice - practice weakest combos"},
			Bagwork:      []string{"12 rounds of 2 minutes - Everything integrated", "Speed, power, defense, pressure", "Simulated fight conditions"},
			Conditioning: []string{"High-intensity finisher circuit - 15 minutes", "All exercises from the week", "Maximum effort"},
			Recovery:     []string{"Extensive cool down - 20 minutes", "Ice and nutrition", "Weekend rest earned"},
		},
	},
	{ // Week 3
		{
			Focus:        "Counter-Punching Excellence",
			Duration:     "70-80 minutes",
			Description:  "Reading opponent patterns and countering effectively",
			Warmup:       []string{"Jump rope - 4x2 min", "Reaction drills - 5 minutes", "Shadow counter-punching - 5 minutes"},
			Technical:    []string{"Catch and counter drills - 5 sets of 10", "Pull counter technique - 4x2 min", "Anticipation exercises - 5 sets"},
			Combos:       []string{"Slip > Counter Cross (5x10)", "Block > Hook Counter (5x10)", "Roll > Uppercut Counter (5x10)"},
			Bagwork:      []string{"7 rounds of 2 minutes - Counter focus", "Imagine attacks coming", "Defensive then explosive counter"},
			Conditioning: []string{"Reaction ball drills - 4 sets", "Speed ladders - 5 sets", "Core work - 10 minutes"},
			Recovery:     []string{"Stretching - 12 minutes", "Meditation - 5 minutes"},
		},
		{
			Focus:        "Inside Fighting",
			Duration:     "70-80 minutes",
			Description:  "Mastering close-range warfare",
			Warmup:       []string{"Jump rope - 4x2 min", "Shoulder warm-up - 5 minutes", "Close-range shadow - 5 minutes"},
			Technical:    []string{"Clinch positioning - 5 sets", "Short punch mechanics - 5 sets of 12", "Inside leverage drills - 4x2 min"},
			Combos:       []string{"Short hooks inside (5x12)", "Uppercuts in pocket (5x12)", "Rapid-fire body shots (5x12)"},
			Bagwork:      []string{"8 rounds of 2 minutes - Phone booth fighting", "Stay close to bag", "All short punches"},
			Conditioning: []string{"Heavy bag hug and punch - 4x1 min", "Resistance band punches - 4 sets of 20", "Plank variations - 10 minutes"},
			Recovery:     []string{"Upper body focus stretch - 15 minutes"},
		},
		{
			Focus:        "Footwork & Angles",
			Duration:     "65-75 minutes",
			Description:  "Advanced footwork patterns and angle creation",
			Warmup:       []string{"Jump rope with lateral movement - 5x2 min", "Ladder drills - 10 minutes", "Shadow with angles - 5 minutes"},
			Technical:    []string{"Pivot drills - 5 sets of 10 each side", "Step-drag sequences - 4x2 min", "Angle creation - 5 sets"},
			Combos:       []string{"Pivot Left > Hook (5x10)", "Step Right > Cross (5x10)", "Circle > Double Jab (5x10)"},
			Bagwork:      []string{"6 rounds of 3 minutes - Constant angles", "Never stand still", "Hit and move"},
			Conditioning: []string{"Lateral bounds - 4 sets of 12", "Cone drills - 5 sets", "Agility ladder - 8 minutes"},
			Recovery:     []string{"Leg stretching - 12 minutes", "Foam roll - 8 minutes"},
		},
		{
			Focus:        "Power Punching Session",
			Duration:     "75-85 minutes",
			Description:  "Maximum force generation and knockout power",
			Warmup:       []string{"Jump rope - 4x2 min", "Dynamic explosiveness - 8 minutes", "Power shadow - 5 minutes"},
			Technical:    []string{"Heavy bag power drills - 5 sets of 6", "Max force technique - 4 sets", "Explosion from stance - 5 sets of 5"},
			Combos:       []string{"Power: Cross-Hook-Cross (4x8)", "Uppercut with full power (4x8)", "Overhand right (4x8)"},
			Bagwork:      []string{"5 rounds of 3 minutes - 100% power", "Rest 2 minutes between rounds", "Every shot maximum effort"},
			Conditioning: []string{"Heavy bag max punches - 5x30 seconds", "Medicine ball throws - 5 sets of 10", "Power push-ups - 4 sets of 12"},
			Recovery:     []string{"Extended recovery - 20 minutes", "Ice shoulders - 10 minutes"},
		},
		{
			Focus:        "Week 3 Mastery Test",
			Duration:     "80-90 minutes",
			Description:  "Integration and testing of all Week 3 skills",
			Warmup:       []string{"Complete warm-up - 15 minutes"},
			Technical:    []string{"All week's drills review - 25 minutes"},
			Combos:       []string{"Free combination work - 15 minutes"},
			Bagwork:      []string{"Hard sparring simulation - 12x2 min", "Use all techniques learned", "Maximal intensity"},
			Conditioning: []string{"Final week test circuit - 20 minutes"},
			Recovery:     []string{"Complete recovery protocol - 25 minutes"},
		},
	},
	{ // Week 4
		{
			Focus:        "Speed Endurance",
			Duration:     "70-80 minutes",
			Description:  "Maintaining speed through fatigue",
			Warmup:       []string{"Extended cardio - 15 min"},
			Technical:    []string{"High-volume speed work"},
			Combos:       []string{"Fast combinations - sustained"},
			Bagwork:      []string{"10 rounds speed focus"},
			Conditioning: []string{"Endurance circuit"},
			Recovery:     []string{"Active recovery"},
		},
		{
			Focus:        "Advanced Defense",
			Duration:     "70-80 minutes",
			Description:  "Elite defensive techniques",
			Warmup:       []string{"Standard"},
			Technical:    []string{"Complex defensive patterns"},
			Combos:       []string{"Defense-first combinations"},
			Bagwork:      []string{"8 rounds defensive"},
			Conditioning: []string{"Defensive conditioning"},
			Recovery:     []string{"Standard"},
		},
		{
			Focus:        "Combination Complexity",
			Duration:     "75-85 minutes",
			Description:  "Multi-punch sequences",
			Warmup:       []string{"Standard"},
			Technical:    []string{"Long combinations"},
			Combos:       []string{"5-8 punch sequences"},
			Bagwork:      []string{"Complex combo rounds"},
			Conditioning: []string{"Arm endurance"},
			Recovery:     []string{"Standard"},
		},
		{
			Focus:        "Fight Simulation",
			Duration:     "80-90 minutes",
			Description:  "Realistic fight scenarios",
			Warmup:       []string{"Fight prep"},
			Technical:    []string{"Situational drills"},
			Combos:       []string{"Adaptive combinations"},
			Bagwork:      []string{"Sparring style rounds"},
			Conditioning: []string{"Fight conditioning"},
			Recovery:     []string{"Post-fight protocol"},
		},
		{
			Focus:        "Week 4 Peak",
			Duration:     "85-95 minutes",
			Description:  "Peak performance integration",
			Warmup:       []string{"Full prep"},
			Technical:    []string{"All skills"},
			Combos:       []string{"Everything"},
			Bagwork:      []string{"Maximum rounds"},
			Conditioning: []string{"Peak circuit"},
			Recovery:     []string{"Full recovery"},
		},
	},
	{ // Week 5
		{
			Focus:        "Mental Toughness",
			Duration:     "75-85 minutes",
			Description:  "Pushing through barriers",
			Warmup:       []string{"Standard"},
			Technical:    []string{"Fatigue drills"},
			Combos:       []string{"Under pressure"},
			Bagwork:      []string{"Extended rounds"},
			Conditioning: []string{"Mental endurance"},
			Recovery:     []string{"Mental recovery"},
		},
		{
			Focus:        "Precision Under Fatigue",
			Duration:     "75-85 minutes",
			Description:  "Accuracy when tired",
			Warmup:       []string{"Standard"},
			Technical:    []string{"Precision drills"},
			Combos:       []string{"Accurate combinations"},
			Bagwork:      []string{"Target focused"},
			Conditioning: []string{"Precision conditioning"},
			Recovery:     []string{"Standard"},
		},
		{
			Focus:        "Power Endurance",
			Duration:     "80-90 minutes",
			Description:  "Maintaining power late",
			Warmup:       []string{"Standard"},
			Technical:    []string{"Power sustainability"},
			Combos:       []string{"Hard combinations"},
			Bagwork:      []string{"Power throughout"},
			Conditioning: []string{"Power endurance"},
			Recovery:     []string{"Deep recovery"},
		},
		{
			Focus:        "Championship Rounds",
			Duration:     "85-95 minutes",
			Description:  "Going the distance",
			Warmup:       []string{"Extended"},
			Technical:    []string{"Endurance patterns"},
			Combos:       []string{"Sustained output"},
			Bagwork:      []string{"15+ rounds"},
			Conditioning: []string{"Championship circuit"},
			Recovery:     []string{"Extended"},
		},
		{
			Focus:        "Week 5 Completion",
			Duration:     "90-100 minutes",
			Description:  "Near-peak performance",
			Warmup:       []string{"Full"},
			Technical:    []string{"Everything"},
			Combos:       []string{"All techniques"},
			Bagwork:      []string{"Maximum volume"},
			Conditioning: []string{"Peak test"},
			Recovery:     []string{"Full protocol"},
		},
	},
	{ // Week 6
		{
			Focus:        "Peak Speed",
			Duration:     "75-85 minutes",
			Description:  "Fastest you've ever been",
			Warmup:       []string{"Speed prep"},
			Technical:    []string{"Maximum speed drills"},
			Combos:       []string{"Lightning fast"},
			Bagwork:      []string{"Speed rounds"},
			Conditioning: []string{"Speed conditioning"},
			Recovery:     []string{"Standard"},
		},
		{
			Focus:        "Peak Power",
			Duration:     "75-85 minutes",
			Description:  "Hardest you've ever hit",
			Warmup:       []string{"Power prep"},
			Technical:    []string{"Max power drills"},
			Combos:       []string{"Devastating shots"},
			Bagwork:      []string{"Power display"},
			Conditioning: []string{"Power peak"},
			Recovery:     []string{"Ice recovery"},
		},
		{
			Focus:        "Peak Defense",
			Duration:     "75-85 minutes",
			Description:  "Untouchable movement",
			Warmup:       []string{"Defense prep"},
			Technical:    []string{"Elite defense"},
			Combos:       []string{"Perfect defense"},
			Bagwork:      []string{"Defensive mastery"},
			Conditioning: []string{"Defense stamina"},
			Recovery:     []string{"Standard"},
		},
		{
			Focus:        "Final Preparation",
			Duration:     "80-90 minutes",
			Description:  "Bringing it all together",
			Warmup:       []string{"Complete prep"},
			Technical:    []string{"All systems"},
			Combos:       []string{"Complete arsenal"},
			Bagwork:      []string{"Showcase rounds"},
			Conditioning: []string{"Final test"},
			Recovery:     []string{"Pre-peak recovery"},
		},
		{
			Focus:        "Graduation Day",
			Duration:     "90-120 minutes",
			Description:  "Demonstrate mastery of peek-a-boo style",
			Warmup:       []string{"Championship warm-up"},
			Technical:    []string{"Final demonstration"},
			Combos:       []string{"Everything perfected"},
			Bagwork:      []string{"Victory rounds"},
			Conditioning: []string{"Celebration circuit"},
			Recovery:     []string{"Champion's rest"},
		},
	},
}
